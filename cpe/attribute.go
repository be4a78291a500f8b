package cpe

// Attribute is a type for enumerating the valid CPE attributes.
type Attribute int

// These are the valid Attributes, in CPE 2.3 binding order.
const (
	Part      Attribute = iota // part
	Vendor                     // vendor
	Product                    // product
	Version                    // version
	Update                     // update
	Edition                    // edition
	Language                   // language
	SwEdition                  // sw_edition
	TargetSW                   // target_sw
	TargetHW                   // target_hw
	Other                      // other
)

// NumAttr is the number of attributes in a 2.3 well-formed name.
const NumAttr = 11

var attributeName = [NumAttr]string{
	Part:      "part",
	Vendor:    "vendor",
	Product:   "product",
	Version:   "version",
	Update:    "update",
	Edition:   "edition",
	Language:  "language",
	SwEdition: "sw_edition",
	TargetSW:  "target_sw",
	TargetHW:  "target_hw",
	Other:     "other",
}

// String implements [fmt.Stringer].
func (a Attribute) String() string {
	if a < 0 || int(a) >= NumAttr {
		return "Attribute(?)"
	}
	return attributeName[a]
}

// NameVersion is the CPE specification version a [Name] is encoded under.
type NameVersion int

// The three specification generations this package understands.
const (
	V1_1 NameVersion = iota // 1.1
	V2_2                    // 2.2
	V2_3                    // 2.3
)

var nameVersionName = [...]string{
	V1_1: "1.1",
	V2_2: "2.2",
	V2_3: "2.3",
}

// String implements [fmt.Stringer].
func (v NameVersion) String() string {
	if v < 0 || int(v) >= len(nameVersionName) {
		return "NameVersion(?)"
	}
	return nameVersionName[v]
}

// numAttr reports how many of the 11 canonical attributes are native to the
// version: 7 for 1.1 and 2.2, 11 for 2.3.
func (v NameVersion) numAttr() int {
	if v == V2_3 {
		return NumAttr
	}
	return int(Language) + 1
}
