package movements

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moneyovertime/mot/internal/model"
)

var scenarioRows = NumberRows([]string{
	"15/06/2024,65,cash",
	"16/06/2024,50,Cash",
	"16/06/2024,-15,bank",
	"17/06/2024,1175,bank",
})

func accountFilter(mode model.FilterMode) *model.Filter {
	return &model.Filter{
		Column: model.Column{Label: "account"}.At(2),
		Value:  "CASH",
		Mode:   mode,
	}
}

func TestFilterRows_KeepMatching(t *testing.T) {
	rows, err := FilterRows(scenarioRows, ',', accountFilter(model.KeepMatching))
	require.NoError(t, err)
	assert.Equal(t, scenarioRows[:2], rows)
}

func TestFilterRows_DropMatching(t *testing.T) {
	rows, err := FilterRows(scenarioRows, ',', accountFilter(model.DropMatching))
	require.NoError(t, err)
	assert.Equal(t, scenarioRows[2:], rows)
}

func TestFilterRows_NoOp(t *testing.T) {
	rows, err := FilterRows(scenarioRows, ',', nil)
	require.NoError(t, err)
	assert.Equal(t, scenarioRows, rows)

	unresolved := &model.Filter{Column: model.Column{Label: "account"}, Value: "cash", Mode: model.DropMatching}
	rows, err = FilterRows(scenarioRows, ',', unresolved)
	require.NoError(t, err)
	assert.Equal(t, scenarioRows, rows)
}

func TestFilterRows_ShortRowNeverMatches(t *testing.T) {
	rows := NumberRows([]string{"15/06/2024,65", "16/06/2024,1,cash"})

	kept, err := FilterRows(rows, ',', accountFilter(model.KeepMatching))
	require.NoError(t, err)
	assert.Equal(t, rows[1:], kept)

	kept, err = FilterRows(rows, ',', accountFilter(model.DropMatching))
	require.NoError(t, err)
	assert.Equal(t, rows[:1], kept)
}

func TestFilterRows_QuotedValue(t *testing.T) {
	rows := NumberRows([]string{`15/06/2024,65,"cash, wallet"`, "16/06/2024,1,cash"})
	f := accountFilter(model.KeepMatching)
	f.Value = "Cash, Wallet"

	kept, err := FilterRows(rows, ',', f)
	require.NoError(t, err)
	assert.Equal(t, rows[:1], kept)
}

func TestFilterRows_KeepsLineNumbers(t *testing.T) {
	rows, err := FilterRows(scenarioRows, ',', accountFilter(model.DropMatching))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 4, rows[0].Line)
	assert.Equal(t, 5, rows[1].Line)
}

func TestFilterRows_UnknownMode(t *testing.T) {
	_, err := FilterRows(scenarioRows, ',', accountFilter("sideways"))
	require.ErrorIs(t, err, ErrFormat)
}

func TestAggregate_SumsPerDate(t *testing.T) {
	date := model.DateColumn{Column: model.Column{Label: "date"}.At(0), Format: "%d/%m/%Y"}
	amount := model.Column{Label: "amount"}.At(1)

	s, err := Aggregate(scenarioRows, ',', date, amount)
	require.NoError(t, err)
	require.Len(t, s, 3)

	v, ok := s.Get(day(2024, 6, 16))
	require.True(t, ok)
	assert.True(t, v.Equal(decimal.NewFromInt(35)), "got %s", v)
}

func TestAggregate_FloatNoiseIsRounded(t *testing.T) {
	rows := NumberRows([]string{"01/01/2024,0.1", "01/01/2024,0.2", "01/01/2024, 1.004 "})
	date := model.DateColumn{Column: model.Column{Label: "date"}.At(0), Format: "%d/%m/%Y"}
	amount := model.Column{Label: "amount"}.At(1)

	s, err := Aggregate(rows, ',', date, amount)
	require.NoError(t, err)
	require.Len(t, s, 1)
	assert.Equal(t, "1.30", s[0].Amount.StringFixed(2))
	assert.True(t, s[0].Amount.Equal(decimal.RequireFromString("1.3")))
}

func TestAggregate_SkipsBlankRows(t *testing.T) {
	rows := NumberRows([]string{"01/01/2024,5", "", "02/01/2024,6"})
	date := model.DateColumn{Column: model.Column{Label: "date"}.At(0), Format: "%d/%m/%Y"}
	amount := model.Column{Label: "amount"}.At(1)

	s, err := Aggregate(rows, ',', date, amount)
	require.NoError(t, err)
	assert.Len(t, s, 2)
}

func TestAggregate_ShortRow(t *testing.T) {
	date := model.DateColumn{Column: model.Column{Label: "date"}.At(0), Format: "%d/%m/%Y"}
	amount := model.Column{Label: "amount"}.At(3)

	_, err := Aggregate(scenarioRows, ',', date, amount)
	require.ErrorIs(t, err, ErrFormat)
}

func TestAggregate_ErrorNamesLine(t *testing.T) {
	rows := []Row{{Line: 7, Text: "01/01/2024,5"}, {Line: 12, Text: "02/01/2024,five"}}
	date := model.DateColumn{Column: model.Column{Label: "date"}.At(0), Format: "%d/%m/%Y"}
	amount := model.Column{Label: "amount"}.At(1)

	_, err := Aggregate(rows, ',', date, amount)
	require.ErrorIs(t, err, ErrFormat)
	assert.Contains(t, err.Error(), "row 12")
}

func TestAggregate_Unresolved(t *testing.T) {
	_, err := Aggregate(scenarioRows, ',', model.DateColumn{}, model.Column{})
	require.Error(t, err)
}
