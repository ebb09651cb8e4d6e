package assessmentValidator

import (
	"testing"

	"onlynerds/models"
)

func TestValidateQuestions(t *testing.T) {
	tests := []struct {
		name      string
		questions []models.MCQQuestion
		want      bool
	}{
		{
			name: "valid single question",
			questions: []models.MCQQuestion{
				{Question: "What is Go?", Options: []string{"A language", "A game"}, CorrectOption: 0},
			},
			want: true,
		},
		{
			name:      "empty list",
			questions: nil,
			want:      false,
		},
		{
			name: "blank prompt",
			questions: []models.MCQQuestion{
				{Question: "   ", Options: []string{"A"}, CorrectOption: 0},
			},
			want: false,
		},
		{
			name: "no options",
			questions: []models.MCQQuestion{
				{Question: "Q", Options: nil, CorrectOption: 0},
			},
			want: false,
		},
		{
			name: "correct option past the end",
			questions: []models.MCQQuestion{
				{Question: "Q", Options: []string{"A", "B"}, CorrectOption: 2},
			},
			want: false,
		},
		{
			name: "negative correct option",
			questions: []models.MCQQuestion{
				{Question: "Q", Options: []string{"A"}, CorrectOption: -1},
			},
			want: false,
		},
		{
			name: "second question invalid",
			questions: []models.MCQQuestion{
				{Question: "Q1", Options: []string{"A"}, CorrectOption: 0},
				{Question: "Q2", Options: []string{"A"}, CorrectOption: 1},
			},
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, got := ValidateQuestions(tt.questions); got != tt.want {
				t.Errorf("ValidateQuestions() = %v, want %v", got, tt.want)
			}
		})
	}
}
