package style

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSheetStartsAtDefaults(t *testing.T) {
	t.Parallel()

	sheet := NewSheet()
	for _, role := range Roles() {
		require.Equal(t, Defaults(role), sheet.Record(role))
		require.Equal(t, role, sheet.Cell(role).Role())
		require.Equal(t, LimitsFor(role), sheet.Cell(role).Limits())
	}
	require.Nil(t, sheet.Cell(Role(7)))
}

func TestSheetUpdatesAreIndependent(t *testing.T) {
	t.Parallel()

	updates := []struct {
		field Field
		value Value
	}{
		{Padding, Pixels(0)},
		{Margin, Pixels(100)},
		{Width, Pixels(199)},
		{Height, Pixels(7)},
		{PositionField, PositionRelative},
		{DisplayField, DisplayInline},
		{BackgroundColor, Color("#123456")},
	}

	for _, target := range Roles() {
		for _, u := range updates {
			sheet := NewSheet()
			require.NoError(t, sheet.Update(target, u.field, u.value))

			for _, role := range Roles() {
				if role == target {
					require.Equal(t, []Field{u.field}, Defaults(role).Diff(sheet.Record(role)))
					continue
				}
				require.Equal(t, Defaults(role), sheet.Record(role), "%s changed after updating %s", role, target)
			}
		}
	}
}

func TestSheetScenarioParentWidth(t *testing.T) {
	t.Parallel()

	sheet := NewSheet()
	require.Equal(t, "300px", sheet.Record(Parent).Width.String())

	require.NoError(t, sheet.Update(Parent, Width, Pixels(450)))
	require.Equal(t, "450px", sheet.Record(Parent).Width.String())
	require.Equal(t, Defaults(Child), sheet.Record(Child))
	require.Equal(t, Defaults(Grandchild), sheet.Record(Grandchild))
}

func TestSheetScenarioChildDisplayFlex(t *testing.T) {
	t.Parallel()

	sheet := NewSheet()
	require.NoError(t, sheet.Update(Child, DisplayField, DisplayFlex))

	require.Equal(t, DisplayFlex, sheet.Record(Child).Display)
	require.Equal(t, DisplayBlock, sheet.Record(Parent).Display)
	require.Equal(t, DisplayBlock, sheet.Record(Grandchild).Display)
}

func TestSheetScenarioGrandchildColor(t *testing.T) {
	t.Parallel()

	sheet := NewSheet()
	require.NoError(t, sheet.Update(Grandchild, BackgroundColor, Color("#FF0000")))

	require.Equal(t, Color("#FF0000"), sheet.Record(Grandchild).Background)
	require.Equal(t, Color("#E0FFFF"), sheet.Record(Parent).Background)
	require.Equal(t, Color("#98FB98"), sheet.Record(Child).Background)
}

func TestSheetUpdateUnknownRole(t *testing.T) {
	t.Parallel()

	sheet := NewSheet()
	require.Error(t, sheet.Update(Role(-1), Width, Pixels(10)))
}

func TestSheetResetAll(t *testing.T) {
	t.Parallel()

	sheet := NewSheet()
	require.NoError(t, sheet.Update(Parent, Width, Pixels(10)))
	require.NoError(t, sheet.Update(Child, Width, Pixels(10)))

	sheet.Reset(Child)
	require.Equal(t, Defaults(Child), sheet.Record(Child))
	require.Equal(t, Pixels(10), sheet.Record(Parent).Width)

	sheet.ResetAll()
	for _, role := range Roles() {
		require.Equal(t, Defaults(role), sheet.Record(role))
	}
}
