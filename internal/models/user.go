package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User is an account document in the "usuarios" collection. Senha holds the
// bcrypt hash, never the plaintext.
type User struct {
	ID       primitive.ObjectID `json:"id"       bson:"_id,omitempty"`
	Email    string             `json:"email"    bson:"email"`
	Senha    string             `json:"-"        bson:"senha"` // never serialize
	Telefone string             `json:"telefone" bson:"telefone"`
	Nome     string             `json:"nome"     bson:"nome"`
}

// RegisterRequest is the JSON body for POST /api/addUser.
type RegisterRequest struct {
	Email    string `json:"email"`
	Senha    string `json:"senha"`
	Telefone string `json:"telefone"`
	Nome     string `json:"nome"`
}

// LoginRequest is the JSON body for POST /login.
type LoginRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

// Profile is the reduced user shape returned by a successful login.
// Telefone and the password hash are never exposed here.
type Profile struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Nome  string `json:"nome"`
}
