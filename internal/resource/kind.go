package resource

// Kind differentiates the identifiers of the different entities the strip
// hands out.
type Kind int

const (
	Global Kind = iota
	Tab
	Registry
	Binding
)

func (k Kind) String() string {
	return [...]string{
		"global",
		"tab",
		"reg",
		"bind",
	}[k]
}
