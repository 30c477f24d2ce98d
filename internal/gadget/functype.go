package gadget

import (
	"fmt"

	"github.com/desertwitch/gogadget/internal/gadgeterr"
)

// FunctionType is the type of a USB function, as encoded in the prefix of
// its directory name.
type FunctionType int

const (
	FunctionSerial FunctionType = iota
	FunctionACM
	FunctionOBEX
	FunctionECM
	FunctionSubset
	FunctionNCM
	FunctionEEM
	FunctionRNDIS
	FunctionPhonet
	FunctionFFS
)

// functionTypeNames is indexed by [FunctionType], the order is significant.
//
//nolint:gochecknoglobals
var functionTypeNames = [...]string{
	FunctionSerial: "gser",
	FunctionACM:    "acm",
	FunctionOBEX:   "obex",
	FunctionECM:    "ecm",
	FunctionSubset: "geth",
	FunctionNCM:    "ncm",
	FunctionEEM:    "eem",
	FunctionRNDIS:  "rndis",
	FunctionPhonet: "phonet",
	FunctionFFS:    "ffs",
}

// FunctionTypes returns all known function types in their canonical order.
func FunctionTypes() []FunctionType {
	types := make([]FunctionType, len(functionTypeNames))
	for i := range functionTypeNames {
		types[i] = FunctionType(i)
	}

	return types
}

// Valid reports whether the [FunctionType] is a known one.
func (t FunctionType) Valid() bool {
	return t >= 0 && int(t) < len(functionTypeNames)
}

// String returns the directory prefix of the [FunctionType], or an empty
// string for an unknown one.
func (t FunctionType) String() string {
	if !t.Valid() {
		return ""
	}

	return functionTypeNames[t]
}

// ParseFunctionType looks up a [FunctionType] by its directory prefix.
func ParseFunctionType(name string) (FunctionType, error) {
	for i, n := range functionTypeNames {
		if n == name {
			return FunctionType(i), nil
		}
	}

	return -1, fmt.Errorf("(gadget-functype) %q: %w", name, gadgeterr.ErrNotSupported)
}

type attrKind int

const (
	attrKindNone attrKind = iota
	attrKindSerial
	attrKindNet
	attrKindPhonet
)

func (t FunctionType) attrKind() attrKind {
	switch t {
	case FunctionSerial, FunctionACM, FunctionOBEX:
		return attrKindSerial
	case FunctionECM, FunctionSubset, FunctionNCM, FunctionEEM, FunctionRNDIS:
		return attrKindNet
	case FunctionPhonet:
		return attrKindPhonet
	default:
		return attrKindNone
	}
}
