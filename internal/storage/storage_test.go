package storage_test

import (
	"testing"

	"workout-core/internal/model"
	"workout-core/internal/storage"
	"workout-core/pkg/apperror"
)

func TestAsMatchingVariant(t *testing.T) {
	five := 5
	var f storage.Filter = model.ProductFilter{CategoryID: &five}

	typed, err := storage.As[model.ProductFilter](f)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if typed.CategoryID == nil || *typed.CategoryID != 5 {
		t.Errorf("filter fields lost in narrowing: %+v", typed)
	}
}

func TestAsWrongVariant(t *testing.T) {
	var f storage.Filter = model.CategoryFilter{}

	_, err := storage.As[model.MealFilter](f)
	if err == nil {
		t.Fatal("expected type mismatch error")
	}
	if !apperror.IsKind(err, apperror.KindTypeMismatch) {
		t.Errorf("expected KindTypeMismatch, got kind %v (%v)", apperror.KindOf(err), err)
	}
}
