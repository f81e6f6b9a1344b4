package style

// Defaults returns the startup record for role.
func Defaults(role Role) Record {
	switch role {
	case Child:
		return Record{
			Padding:    10,
			Margin:     5,
			Width:      100,
			Height:     100,
			Position:   PositionStatic,
			Display:    DisplayBlock,
			Background: "#98FB98",
		}
	case Grandchild:
		return Record{
			Padding:    5,
			Margin:     2,
			Width:      50,
			Height:     50,
			Position:   PositionStatic,
			Display:    DisplayBlock,
			Background: "#FFB6C1",
		}
	default:
		return Record{
			Padding:    20,
			Margin:     10,
			Width:      300,
			Height:     300,
			Position:   PositionStatic,
			Display:    DisplayBlock,
			Background: "#E0FFFF",
		}
	}
}
