package ports

// SlideRole identifies which template and layout rules a slide uses.
type SlideRole int

const (
	// RoleCover is the first slide of a carousel (template 1).
	RoleCover SlideRole = iota
	// RoleContent is any middle slide (template 2).
	RoleContent
	// RoleCTA is the closing call-to-action slide (template 3).
	RoleCTA
)

// String returns the string representation of the role.
func (r SlideRole) String() string {
	switch r {
	case RoleCover:
		return "cover"
	case RoleContent:
		return "content"
	case RoleCTA:
		return "cta"
	default:
		return "unknown"
	}
}

// TemplateName returns the template asset name for the role.
func (r SlideRole) TemplateName() string {
	switch r {
	case RoleCover:
		return "1"
	case RoleCTA:
		return "3"
	default:
		return "2"
	}
}

// ParseSlideRole parses an explicit slide type field into a role.
// The second return value is false for empty or unrecognized values.
func ParseSlideRole(s string) (SlideRole, bool) {
	switch s {
	case "cover":
		return RoleCover, true
	case "content":
		return RoleContent, true
	case "cta":
		return RoleCTA, true
	default:
		return RoleContent, false
	}
}

// TextKind distinguishes the two text blocks on a slide.
type TextKind int

const (
	// TextMain is the headline block.
	TextMain TextKind = iota
	// TextSub is the supporting text block.
	TextSub
)
