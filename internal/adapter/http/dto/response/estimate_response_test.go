package response

import (
	"testing"
	"time"

	"foamtrack/internal/domain/entities"
)

func TestFromEstimate(t *testing.T) {
	now := time.Now().UTC()
	approvedAt := now.Add(-time.Minute)
	e := entities.Estimate{
		ID:                "est-1",
		JobID:             "job-1",
		EstimateNumber:    "EST-1A2B3C4D",
		Subtotal:          750.50,
		TotalAmount:       825.55,
		MarkupPercent:     10,
		Status:            entities.EstimateStatusApproved,
		CreatedBy:         "tech-1",
		ApprovedBy:        "mgr-1",
		ApprovedAt:        &approvedAt,
		LocksMeasurements: true,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	res := FromEstimate(e)
	if res.ID != "est-1" || res.JobID != "job-1" || res.EstimateNumber != "EST-1A2B3C4D" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.Subtotal != 750.50 || res.TotalAmount != 825.55 || res.MarkupPercent != 10 {
		t.Fatalf("unexpected amounts: %+v", res)
	}
	if res.Status != "approved" || res.ApprovedBy != "mgr-1" || !res.LocksMeasurements {
		t.Fatalf("unexpected approval fields: %+v", res)
	}
	if res.ApprovedAt == nil || !res.ApprovedAt.Equal(approvedAt) {
		t.Fatalf("unexpected approved_at: %+v", res)
	}
	if !res.CreatedAt.Equal(now) || !res.UpdatedAt.Equal(now) {
		t.Fatalf("unexpected dates: %+v", res)
	}
}

func TestFromEstimates(t *testing.T) {
	res := FromEstimates([]entities.Estimate{{ID: "est-1"}, {ID: "est-2"}})
	if len(res) != 2 || res[0].ID != "est-1" || res[1].ID != "est-2" {
		t.Fatalf("unexpected slice mapping: %+v", res)
	}
	if out := FromEstimates(nil); len(out) != 0 {
		t.Fatalf("expected empty slice, got %+v", out)
	}
}
