package scenario

// Field names of a dialogue line record.
const (
	fieldVoice = "voice"
	fieldText  = "text"
)

// Line is the typed view of one dataset line entry. It is one of
// SingleVoiceLine, MultiVoiceLine, VoiceOnlyLine or OtherLine.
type Line interface {
	// VoiceIDs returns every voice identifier the line references.
	VoiceIDs() []string
	isLine()
}

// SingleVoiceLine plays one clip for a line of text.
type SingleVoiceLine struct {
	ID   string
	Text string
}

// MultiVoiceLine plays several clips at once. Such lines are exempt from
// mismatch detection and repair.
type MultiVoiceLine struct {
	IDs  []string
	Text string
}

// VoiceOnlyLine references clips but carries no string text.
type VoiceOnlyLine struct {
	IDs []string
}

// OtherLine is anything that is not a voiced line record.
type OtherLine struct{}

func (l SingleVoiceLine) VoiceIDs() []string { return []string{l.ID} }
func (l MultiVoiceLine) VoiceIDs() []string  { return l.IDs }
func (l VoiceOnlyLine) VoiceIDs() []string   { return l.IDs }
func (OtherLine) VoiceIDs() []string         { return nil }

func (SingleVoiceLine) isLine() {}
func (MultiVoiceLine) isLine()  {}
func (VoiceOnlyLine) isLine()   {}
func (OtherLine) isLine()       {}

// classify builds the typed view of a line entry node.
func classify(n *Node) Line {
	if n == nil || !n.IsObject() {
		return OtherLine{}
	}
	voice, ok := n.Lookup(fieldVoice)
	if !ok {
		return OtherLine{}
	}

	var (
		ids   []string
		multi bool
	)
	switch {
	case voice.IsArray():
		multi = true
		for _, item := range voice.Items() {
			if id, ok := item.String(); ok {
				ids = append(ids, id)
			}
		}
	default:
		id, ok := voice.String()
		if !ok {
			return OtherLine{}
		}
		ids = []string{id}
	}

	textNode, ok := n.Lookup(fieldText)
	if !ok {
		return VoiceOnlyLine{IDs: ids}
	}
	text, ok := textNode.String()
	if !ok {
		return VoiceOnlyLine{IDs: ids}
	}

	if multi {
		return MultiVoiceLine{IDs: ids, Text: text}
	}
	return SingleVoiceLine{ID: ids[0], Text: text}
}
