package response

import (
	"testing"
	"time"

	"foamtrack/internal/domain/entities"
)

func TestFromJob(t *testing.T) {
	now := time.Now().UTC()
	j := entities.Job{
		ID:           "job-1",
		CustomerName: "Acme Builders",
		SiteAddress:  "12 Main St",
		Framing:      entities.Framing2x6,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	res := FromJob(j)
	if res.ID != "job-1" || res.CustomerName != "Acme Builders" || res.SiteAddress != "12 Main St" {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if res.FramingSize != "2x6" {
		t.Fatalf("unexpected framing: %s", res.FramingSize)
	}
	if res.CavityDepthIn != 5.5 {
		t.Fatalf("expected cavity depth 5.5, got %v", res.CavityDepthIn)
	}
	if !res.CreatedAt.Equal(now) || !res.UpdatedAt.Equal(now) {
		t.Fatalf("unexpected dates: %+v", res)
	}
}
