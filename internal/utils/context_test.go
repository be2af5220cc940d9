// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/ralona/nutritracker/models"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestUserIDCtxKey(t *testing.T) {
	if UserIDCtxKey.String() != "userID" {
		t.Errorf("expected 'userID', got '%s'", UserIDCtxKey.String())
	}
}

func TestGetUserIDFromContext_Success(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserIDCtxKey, int64(42))

	userID, ok := GetUserIDFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if userID != 42 {
		t.Errorf("expected userID=42, got %d", userID)
	}
}

func TestGetUserIDFromContext_Missing(t *testing.T) {
	ctx := context.Background()

	userID, ok := GetUserIDFromContext(ctx)

	if ok {
		t.Fatal("expected ok=false, got true")
	}
	if userID != 0 {
		t.Errorf("expected userID=0, got %d", userID)
	}
}

func TestGetUserIDFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserIDCtxKey, "not-an-int64")

	userID, ok := GetUserIDFromContext(ctx)

	if ok {
		t.Fatal("expected ok=false for wrong type, got true")
	}
	if userID != 0 {
		t.Errorf("expected userID=0, got %d", userID)
	}
}

func TestGetUserIDFromContext_ZeroValue(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserIDCtxKey, int64(0))

	userID, ok := GetUserIDFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true for zero value, got false")
	}
	if userID != 0 {
		t.Errorf("expected userID=0, got %d", userID)
	}
}

func TestGetUserIDFromContext_NegativeValue(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserIDCtxKey, int64(-1))

	userID, ok := GetUserIDFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if userID != -1 {
		t.Errorf("expected userID=-1, got %d", userID)
	}
}

func TestGetUserIDFromContext_DifferentKey(t *testing.T) {
	otherKey := contextKey("otherKey")
	ctx := context.WithValue(context.Background(), otherKey, int64(99))

	userID, ok := GetUserIDFromContext(ctx)

	if ok {
		t.Fatal("expected ok=false for different key, got true")
	}
	if userID != 0 {
		t.Errorf("expected userID=0, got %d", userID)
	}
}

func TestWithActor_Nutritionist(t *testing.T) {
	ctx := WithActor(context.Background(), models.NutritionistActor{ID: 7})

	actor, ok := GetActorFromContext(ctx)
	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if _, isNutritionist := actor.(models.NutritionistActor); !isNutritionist {
		t.Fatalf("expected NutritionistActor, got %T", actor)
	}

	userID, ok := GetUserIDFromContext(ctx)
	if !ok || userID != 7 {
		t.Errorf("expected userID=7, got %d (ok=%v)", userID, ok)
	}
}

func TestWithActor_Client(t *testing.T) {
	nutritionistID := int64(3)
	ctx := WithActor(context.Background(), models.ClientActor{ID: 11, NutritionistID: &nutritionistID})

	actor, ok := GetActorFromContext(ctx)
	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	client, isClient := actor.(models.ClientActor)
	if !isClient {
		t.Fatalf("expected ClientActor, got %T", actor)
	}
	if client.NutritionistID == nil || *client.NutritionistID != 3 {
		t.Errorf("expected nutritionist 3, got %v", client.NutritionistID)
	}
}

func TestGetActorFromContext_Missing(t *testing.T) {
	if _, ok := GetActorFromContext(context.Background()); ok {
		t.Fatal("expected ok=false, got true")
	}
}

func TestWithCurrentUser_SetsActorAndUserID(t *testing.T) {
	nutritionistID := int64(1)
	user := models.User{ID: 5, Role: models.RoleClient, NutritionistID: &nutritionistID}

	ctx := WithCurrentUser(context.Background(), user)

	got, ok := GetCurrentUserFromContext(ctx)
	if !ok || got.ID != 5 {
		t.Fatalf("expected current user 5, got %+v (ok=%v)", got, ok)
	}

	actor, ok := GetActorFromContext(ctx)
	if !ok {
		t.Fatal("expected actor in context")
	}
	client, isClient := actor.(models.ClientActor)
	if !isClient || client.ID != 5 || *client.NutritionistID != 1 {
		t.Errorf("unexpected actor %+v", actor)
	}

	if userID, _ := GetUserIDFromContext(ctx); userID != 5 {
		t.Errorf("expected userID=5, got %d", userID)
	}
}

func TestGetCurrentUserFromContext_Missing(t *testing.T) {
	if _, ok := GetCurrentUserFromContext(context.Background()); ok {
		t.Fatal("expected ok=false")
	}
}
