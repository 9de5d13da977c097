package exam

import (
	"sync"
	"testing"

	"gorm.io/gorm/schema"
)

func TestUserAnswerSelectionColumnIsUnbounded(t *testing.T) {
	s, err := schema.Parse(&UserAnswer{}, &sync.Map{}, schema.NamingStrategy{})
	if err != nil {
		t.Fatalf("parse schema: %v", err)
	}

	field := s.LookUpField("selected_answer")
	if field == nil {
		t.Fatal("selected_answer column missing")
	}
	if field.DataType != "text" {
		t.Errorf("selected_answer type = %q, want text", field.DataType)
	}
}
