// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Actor is the authenticated principal of a request. It is a closed set:
// either a [NutritionistActor] or a [ClientActor]. Code that needs to branch
// on the role should use a type switch rather than comparing role strings.
type Actor interface {
	// ActorID returns the user ID of the principal.
	ActorID() int64

	// ActorRole returns the role the principal acts in.
	ActorRole() Role

	isActor()
}

// NutritionistActor is a nutritionist acting on behalf of their clients.
type NutritionistActor struct {
	ID int64
}

func (a NutritionistActor) ActorID() int64  { return a.ID }
func (a NutritionistActor) ActorRole() Role { return RoleNutritionist }
func (NutritionistActor) isActor()          {}

// ClientActor is a client acting on their own records.
type ClientActor struct {
	ID             int64
	NutritionistID *int64
}

func (a ClientActor) ActorID() int64  { return a.ID }
func (a ClientActor) ActorRole() Role { return RoleClient }
func (ClientActor) isActor()          {}
