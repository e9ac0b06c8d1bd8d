package marketing

import (
	"testing"

	"adcards-backend/internal/domain/marketing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64Ptr(v int64) *int64 { return &v }
func strPtr(s string) *string { return &s }

func TestPlanLeadUpsertInsertsUnknownEmail(t *testing.T) {
	plan := planLeadUpsert(nil, leadInput{
		Email:        "new@example.com",
		Status:       "purchase_intent",
		AdID:         int64Ptr(3),
		BusinessType: strPtr("Professional"),
	})

	assert.False(t, plan.Update)
	assert.Equal(t, "new@example.com", plan.Lead.Email)
	assert.Equal(t, "purchase_intent", plan.Lead.Status)
	require.NotNil(t, plan.Lead.AdID)
	assert.Equal(t, int64(3), *plan.Lead.AdID)
	require.NotNil(t, plan.Lead.BusinessType)
	assert.Equal(t, "Professional", *plan.Lead.BusinessType)
}

func TestPlanLeadUpsertUpdatesExistingEmail(t *testing.T) {
	existing := &marketing.Lead{
		ID:     "5f0c2c1e-0000-0000-0000-000000000000",
		Email:  "repeat@example.com",
		Status: "preview_requested",
	}

	plan := planLeadUpsert(existing, leadInput{
		Email:        "repeat@example.com",
		Status:       "purchase_intent",
		BusinessType: strPtr("Enterprise"),
	})

	assert.True(t, plan.Update)
	assert.Equal(t, existing.ID, plan.Lead.ID, "must update the existing row, not insert")
	assert.Equal(t, "purchase_intent", plan.Lead.Status)
	assert.Equal(t, map[string]interface{}{
		"status":        "purchase_intent",
		"business_type": "Enterprise",
	}, plan.Updates)
}

// Optional fields the caller leaves out must not be overwritten on a
// repeat submission.
func TestPlanLeadUpsertLeavesAbsentFieldsAlone(t *testing.T) {
	existing := &marketing.Lead{ID: "a", Email: "repeat@example.com", Status: "signup", AdID: int64Ptr(7)}

	plan := planLeadUpsert(existing, leadInput{Email: "repeat@example.com", Status: "purchase_intent"})

	assert.Equal(t, map[string]interface{}{"status": "purchase_intent"}, plan.Updates)
}

func TestPlanLeadUpsertDefaultsStatus(t *testing.T) {
	plan := planLeadUpsert(nil, leadInput{Email: "new@example.com"})
	assert.Equal(t, "preview_requested", plan.Lead.Status)

	existing := &marketing.Lead{ID: "a", Email: "repeat@example.com", Status: "signup"}
	plan = planLeadUpsert(existing, leadInput{Email: "repeat@example.com"})
	assert.Equal(t, "preview_requested", plan.Updates["status"])
}
