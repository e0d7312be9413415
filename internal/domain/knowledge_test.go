package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKnowledgeEntryMatchText(t *testing.T) {
	e := KnowledgeEntry{Instruction: "What is the FD rate?", Answer: "a"}
	assert.Equal(t, "What is the FD rate?", e.MatchText())

	e.Input = "for senior citizens"
	assert.Equal(t, "What is the FD rate? for senior citizens", e.MatchText())
}

func TestValidateKnowledgeEntry(t *testing.T) {
	tests := []struct {
		name    string
		entry   *KnowledgeEntry
		wantErr bool
	}{
		{"Valid", &KnowledgeEntry{Instruction: "q", Answer: "a"}, false},
		{"Nil", nil, true},
		{"NoInstruction", &KnowledgeEntry{Answer: "a"}, true},
		{"NoAnswer", &KnowledgeEntry{Instruction: "q"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateKnowledgeEntry(tt.entry)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateDocumentChunk(t *testing.T) {
	tests := []struct {
		name    string
		chunk   *DocumentChunk
		wantErr bool
	}{
		{"Valid", &DocumentChunk{Text: "t", SourceID: "a.txt"}, false},
		{"Nil", nil, true},
		{"NoText", &DocumentChunk{SourceID: "a.txt"}, true},
		{"NoSource", &DocumentChunk{Text: "t"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDocumentChunk(tt.chunk)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateCategoryTemplate(t *testing.T) {
	tests := []struct {
		name     string
		template *CategoryTemplate
		wantErr  bool
	}{
		{"Valid", &CategoryTemplate{CategoryID: "emi", Keywords: []string{"emi"}, Response: "r"}, false},
		{"Nil", nil, true},
		{"NoID", &CategoryTemplate{Keywords: []string{"emi"}, Response: "r"}, true},
		{"NoKeywords", &CategoryTemplate{CategoryID: "emi", Response: "r"}, true},
		{"NoResponse", &CategoryTemplate{CategoryID: "emi", Keywords: []string{"emi"}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCategoryTemplate(tt.template)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
