package domain

// BlockKind identifies the role of a block within a Report.
type BlockKind string

// Block kinds, in the vocabulary of the advisory page.
const (
	BlockHeading BlockKind = "heading"
	BlockText    BlockKind = "text"
	BlockList    BlockKind = "list"
	BlockFever   BlockKind = "fever"
)

// Block is one display unit of a rendered report. Which fields are set
// depends on Kind: headings carry Label, text blocks carry Label and Text,
// lists carry Label and Items, fever blocks carry the type name in Label,
// the description in Text and the comma-joined common symptoms as their
// single item.
type Block struct {
	Kind  BlockKind `json:"kind"`
	Label string    `json:"label,omitempty"`
	Text  string    `json:"text,omitempty"`
	Items []string  `json:"items,omitempty"`
}

// Report is the ordered display document produced from an Advice. It is a
// structured tree of blocks; turning it into markup is a presentation
// concern.
type Report struct {
	Title  string  `json:"title"`
	Blocks []Block `json:"blocks"`
}
