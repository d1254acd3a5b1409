package redis

import (
	"context"
	"testing"

	"tour-planner/db"
	"tour-planner/game"
)

func TestRedisGameDAO_PutAndGet(t *testing.T) {
	// Setup
	mockClient := db.NewMockRedisClient(context.Background())
	dao := NewRedisGameDAO(mockClient)

	st := game.State{MinVal: 1, MaxVal: 100, Target: 57, Attempts: 3, Active: true}

	// Act
	if err := dao.Put(10, 20, st); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	loaded, err := dao.Get(10, 20)

	// Assert
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if loaded == nil {
		t.Fatal("Expected a stored state, got nil")
	}
	if *loaded != st {
		t.Errorf("Expected %+v, got %+v", st, *loaded)
	}
}

func TestRedisGameDAO_GetMiss(t *testing.T) {
	// Setup
	mockClient := db.NewMockRedisClient(context.Background())
	dao := NewRedisGameDAO(mockClient)

	// Act
	loaded, err := dao.Get(10, 20)

	// Assert: an unknown player has no state yet, which is not an error.
	if err != nil {
		t.Fatalf("Expected no error on miss, got %v", err)
	}
	if loaded != nil {
		t.Errorf("Expected nil for an unknown player, got %+v", loaded)
	}
}

func TestRedisGameDAO_StatesAreIsolatedPerUser(t *testing.T) {
	// Setup
	mockClient := db.NewMockRedisClient(context.Background())
	dao := NewRedisGameDAO(mockClient)

	first := game.State{MinVal: 1, MaxVal: 100, Target: 10, Active: true}
	second := game.State{MinVal: 1, MaxVal: 1000, Target: 500, Active: true}

	_ = dao.Put(10, 20, first)
	_ = dao.Put(10, 21, second)

	// Act
	loaded, err := dao.Get(10, 21)

	// Assert
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if loaded.MaxVal != 1000 {
		t.Errorf("Expected the second user's range, got %+v", loaded)
	}
}
