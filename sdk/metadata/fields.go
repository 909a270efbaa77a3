// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

package metadata

// Creator of the deposited work. Name is "Family, Given".
type Creator struct {
	Name        string `json:"name"`
	Affiliation string `json:"affiliation,omitempty"`
	ORCID       string `json:"orcid,omitempty"`
	GND         string `json:"gnd,omitempty"`
}

type Contributor struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Affiliation string `json:"affiliation,omitempty"`
	ORCID       string `json:"orcid,omitempty"`
	GND         string `json:"gnd,omitempty"`
}

type Community struct {
	Identifier string `json:"identifier"`
}

type Grant struct {
	ID string `json:"id"`
}

type Subject struct {
	Term       string `json:"term"`
	Identifier string `json:"identifier"`
	Scheme     string `json:"scheme,omitempty"`
}

type RelatedIdentifier struct {
	Identifier   string `json:"identifier"`
	Relation     string `json:"relation"`
	ResourceType string `json:"resource_type,omitempty"`
}

var uploadTypes = map[string]bool{
	"publication":    true,
	"poster":         true,
	"presentation":   true,
	"dataset":        true,
	"image":          true,
	"video":          true,
	"software":       true,
	"lesson":         true,
	"physicalobject": true,
	"other":          true,
}

var accessRights = map[string]bool{
	"open":       true,
	"embargoed":  true,
	"restricted": true,
	"closed":     true,
}
