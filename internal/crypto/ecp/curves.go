package ecp

// CurveID identifies one of the supported named curves.
type CurveID int

const (
	SECP192R1 CurveID = iota + 1
	SECP224R1
	SECP256R1
	SECP384R1
	SECP521R1
)

func (id CurveID) String() string {
	switch id {
	case SECP192R1:
		return "secp192r1"
	case SECP224R1:
		return "secp224r1"
	case SECP256R1:
		return "secp256r1"
	case SECP384R1:
		return "secp384r1"
	case SECP521R1:
		return "secp521r1"
	}
	return "unknown"
}

// Domain parameters for the supported curves, from SEC2 / FIPS 186-3.
const (
	secp192r1P  = "FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFFFFFFFFFFFF"
	secp192r1B  = "64210519E59C80E70FA7E9AB72243049FEB8DEECC146B9B1"
	secp192r1Gx = "188DA80EB03090F67CBF20EB43A18800F4FF0AFD82FF1012"
	secp192r1Gy = "07192B95FFC8DA78631011ED6B24CDD573F977A11E794811"
	secp192r1N  = "FFFFFFFFFFFFFFFFFFFFFFFF99DEF836146BC9B1B4D22831"

	secp224r1P  = "FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF000000000000000000000001"
	secp224r1B  = "B4050A850C04B3ABF54132565044B0B7D7BFD8BA270B39432355FFB4"
	secp224r1Gx = "B70E0CBD6BB4BF7F321390B94A03C1D356C21122343280D6115C1D21"
	secp224r1Gy = "BD376388B5F723FB4C22DFE6CD4375A05A07476444D5819985007E34"
	secp224r1N  = "FFFFFFFFFFFFFFFFFFFFFFFFFFFF16A2E0B8F03E13DD29455C5C2A3D"

	secp256r1P  = "FFFFFFFF00000001000000000000000000000000FFFFFFFFFFFFFFFFFFFFFFFF"
	secp256r1B  = "5AC635D8AA3A93E7B3EBBD55769886BC651D06B0CC53B0F63BCE3C3E27D2604B"
	secp256r1Gx = "6B17D1F2E12C4247F8BCE6E563A440F277037D812DEB33A0F4A13945D898C296"
	secp256r1Gy = "4FE342E2FE1A7F9B8EE7EB4A7C0F9E162BCE33576B315ECECBB6406837BF51F5"
	secp256r1N  = "FFFFFFFF00000000FFFFFFFFFFFFFFFFBCE6FAADA7179E84F3B9CAC2FC632551"

	secp384r1P = "FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF" +
		"FFFFFFFEFFFFFFFF0000000000000000FFFFFFFF"
	secp384r1B = "B3312FA7E23EE7E4988E056BE3F82D19181D9C6EFE8141120314088F" +
		"5013875AC656398D8A2ED19D2A85C8EDD3EC2AEF"
	secp384r1Gx = "AA87CA22BE8B05378EB1C71EF320AD746E1D3B628BA79B9859F741E0" +
		"82542A385502F25DBF55296C3A545E3872760AB7"
	secp384r1Gy = "3617DE4A96262C6F5D9E98BF9292DC29F8F41DBD289A147CE9DA3113" +
		"B5F0B8C00A60B1CE1D7E819D7A431D7C90EA0E5F"
	secp384r1N = "FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFC7634D81" +
		"F4372DDF581A0DB248B0A77AECEC196ACCC52973"

	secp521r1P = "01FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF" +
		"FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF" +
		"FFFFFFFFFFFFFFFFFFFF"
	secp521r1B = "0051953EB9618E1C9A1F929A21A0B68540EEA2DA725B99B315F3B8B4" +
		"89918EF109E156193951EC7E937B1652C0BD3BB1BF073573DF883D2C" +
		"34F1EF451FD46B503F00"
	secp521r1Gx = "00C6858E06B70404E9CD9E3ECB662395B4429C648139053FB521F828" +
		"AF606B4D3DBAA14B5E77EFE75928FE1DC127A2FFA8DE3348B3C1856A" +
		"429BF97E7E31C2E5BD66"
	secp521r1Gy = "011839296A789A3BC0045C8A5FB42C7D1BD998F54449579B446817AF" +
		"BD17273E662C97EE72995EF42640C550B9013FAD0761353C7086A272" +
		"C24088BE94769FD16650"
	secp521r1N = "01FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF" +
		"FFFFFFFFFFFA51868783BF2F966B7FCC0148F709A5D03BB5C9B8899C" +
		"47AEBB6FB71E91386409"
)

// NewGroup returns a group populated with the domain parameters of a
// well-known curve. P-521 is tagged with its fast reduction; the other
// curves use generic reduction.
func NewGroup(id CurveID) (*Group, error) {
	g := new(Group)

	switch id {
	case SECP192R1:
		return g, g.ReadString(16,
			secp192r1P, secp192r1B, secp192r1Gx, secp192r1Gy, secp192r1N)
	case SECP224R1:
		return g, g.ReadString(16,
			secp224r1P, secp224r1B, secp224r1Gx, secp224r1Gy, secp224r1N)
	case SECP256R1:
		return g, g.ReadString(16,
			secp256r1P, secp256r1B, secp256r1Gx, secp256r1Gy, secp256r1N)
	case SECP384R1:
		return g, g.ReadString(16,
			secp384r1P, secp384r1B, secp384r1Gx, secp384r1Gy, secp384r1N)
	case SECP521R1:
		g.reduce = reduceP521
		return g, g.ReadString(16,
			secp521r1P, secp521r1B, secp521r1Gx, secp521r1Gy, secp521r1N)
	}

	return nil, ErrUnknownCurve
}
