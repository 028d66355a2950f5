package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookbnb/service-booking/pkg/domain"
)

func queryOf(params map[string]string) func(string) (string, bool) {
	return func(name string) (string, bool) {
		v, ok := params[name]
		return v, ok
	}
}

func findCondition(conds []Condition, field string) (Condition, bool) {
	for _, c := range conds {
		if c.Field == field {
			return c, true
		}
	}
	return Condition{}, false
}

func TestBuildConditionsDefaultsBlockchainStatus(t *testing.T) {
	conds, err := BuildConditions(queryOf(nil))
	require.NoError(t, err)

	// The only defaulted parameter: absent blockchain_status means CONFIRMED.
	require.Len(t, conds, 1)
	assert.Equal(t, "blockchain_status", conds[0].Field)
	assert.Equal(t, OpEq, conds[0].Op)
	assert.Equal(t, string(ChainConfirmed), conds[0].Value)
}

func TestBuildConditionsExplicitValueOverridesDefault(t *testing.T) {
	conds, err := BuildConditions(queryOf(map[string]string{"blockchain_status": "UNSET"}))
	require.NoError(t, err)

	cond, ok := findCondition(conds, "blockchain_status")
	require.True(t, ok)
	assert.Equal(t, "UNSET", cond.Value)
}

func TestBuildConditionsConjunction(t *testing.T) {
	conds, err := BuildConditions(queryOf(map[string]string{
		"tenant_id":      "7",
		"publication_id": "3",
		"initial_date":   "2021-02-14",
		"final_date":     "2021-02-28",
		"booking_status": "PENDING",
	}))
	require.NoError(t, err)
	require.Len(t, conds, 6) // five supplied plus the blockchain_status default

	cond, ok := findCondition(conds, "tenant_id")
	require.True(t, ok)
	assert.Equal(t, int64(7), cond.Value)

	cond, ok = findCondition(conds, "initial_date")
	require.True(t, ok)
	assert.Equal(t, OpGte, cond.Op)
	assert.Equal(t, NewDate(2021, 2, 14), cond.Value)

	cond, ok = findCondition(conds, "final_date")
	require.True(t, ok)
	assert.Equal(t, OpLte, cond.Op)
}

func TestBuildConditionsMalformedValues(t *testing.T) {
	tests := []struct {
		param string
		value string
	}{
		{"tenant_id", "abc"},
		{"publication_id", "1.5"},
		{"initial_date", "14/02/2021"},
		{"booking_date", "not-a-date"},
	}
	for _, tt := range tests {
		t.Run(tt.param, func(t *testing.T) {
			_, err := BuildConditions(queryOf(map[string]string{tt.param: tt.value}))
			var validationErr *domain.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Contains(t, validationErr.Message, tt.param)
		})
	}
}
