package asset

import "testing"

func TestDefaultCourseLoads(t *testing.T) {
	c, err := DefaultCourse()
	if err != nil {
		t.Fatalf("DefaultCourse failed: %v", err)
	}
	if c.Name() != "Lixen Links" {
		t.Errorf("Expected course name Lixen Links, got %q", c.Name())
	}
	if c.Remaining() != 2 {
		t.Fatalf("Expected 2 holes, got %d", c.Remaining())
	}

	for i := 1; c.Remaining() > 0; i++ {
		hole, rest, _ := c.Next()
		if hole.Number != i {
			t.Errorf("Expected hole %d, got %d", i, hole.Number)
		}
		if hole.Map.Width() != 90 || hole.Map.Height() != 80 {
			t.Errorf("Hole %d: expected 90x80 map, got %dx%d", i, hole.Map.Width(), hole.Map.Height())
		}
		if hole.Map.Tee() == hole.Map.Flag() {
			t.Errorf("Hole %d: tee and flag coincide", i)
		}
		c = rest
	}
}
