package repository

import (
	"testing"

	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestTitleFilterEmpty(t *testing.T) {
	filter := TitleFilter("")
	if len(filter) != 0 {
		t.Fatalf("empty search should match everything, got %v", filter)
	}
}

func TestTitleFilterEscapesMetacharacters(t *testing.T) {
	filter := TitleFilter("c++ (v2)")

	title, ok := filter["title"].(bson.M)
	if !ok {
		t.Fatalf("filter has no title clause: %v", filter)
	}
	if title["$options"] != "i" {
		t.Errorf("$options = %v, want i (case-insensitive)", title["$options"])
	}
	// The term must be matched literally, not as a regex.
	if title["$regex"] != `c\+\+ \(v2\)` {
		t.Errorf("$regex = %q, metacharacters not escaped", title["$regex"])
	}
}
