package scope

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Entity names which table a scope identifier belongs to.
type Entity string

const (
	EntityMember  Entity = "member"
	EntityCompany Entity = "company"
)

// Kind is the shape of a raw identifier before any lookup.
type Kind int

const (
	KindInvalid Kind = iota
	KindUUID
	KindLegacyNumeric
)

func (k Kind) String() string {
	switch k {
	case KindUUID:
		return "uuid"
	case KindLegacyNumeric:
		return "legacy_numeric"
	default:
		return "invalid"
	}
}

// canonicalUUIDLen restricts uuid.Validate to the 8-4-4-4-12 form; urn: and braced forms are not scope ids.
const canonicalUUIDLen = 36

// Identifier is the classified form of a raw external identifier.
type Identifier struct {
	Kind     Kind
	Raw      string
	LegacyID int64
}

// Classify is the only place that sniffs identifier shapes.
func Classify(raw string) Identifier {
	trimmed := strings.TrimSpace(raw)
	id := Identifier{Kind: KindInvalid, Raw: trimmed}
	if trimmed == "" {
		return id
	}

	if len(trimmed) == canonicalUUIDLen && uuid.Validate(trimmed) == nil {
		id.Kind = KindUUID
		return id
	}

	if isDigits(trimmed) {
		n, err := strconv.ParseInt(trimmed, 10, 64)
		if err != nil {
			return id
		}
		id.Kind = KindLegacyNumeric
		id.LegacyID = n
	}
	return id
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// ScopeIdentifier is a resolved canonical reference; downstream code trusts it as is.
type ScopeIdentifier struct {
	Entity Entity `json:"entity"`
	ID     string `json:"id"`
}

func (s ScopeIdentifier) String() string {
	return string(s.Entity) + ":" + s.ID
}
