package models

import "time"

// BrandInfo carries one brand per project. ID equals the owning project's id
// and is stamped by the server on creation.
type BrandInfo struct {
	ID               string `json:"id"`
	Name             string `json:"name" binding:"required"`
	AlternativeNames string `json:"alternativeNames"`
	Description      string `json:"description"`
	Country          string `json:"country"`
	Websites         string `json:"websites"`
}

type Persona struct {
	ID          int    `json:"id"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Countries   string `json:"countries"`
}

type Competitor struct {
	Name             string `json:"name" binding:"required"`
	AlternativeNames string `json:"alternativeNames"`
	Websites         string `json:"websites"`
}

type Topic struct {
	ID   int    `json:"id"`
	Name string `json:"name" binding:"required"`
}

// Project bundles the monitoring context for a single brand. Sub-collections
// are replaced wholesale on save, never merged.
type Project struct {
	ID          string       `json:"id"`
	UserID      string       `json:"userId"`
	BrandInfo   BrandInfo    `json:"brandInfo"`
	Personas    []Persona    `json:"personas"`
	Competitors []Competitor `json:"competitors"`
	Topics      []Topic      `json:"topics"`
	CreatedAt   time.Time    `json:"-"`
}
