package render

import (
	"testing"

	"opentdb"
)

func TestTextRenderer_DecodeText(t *testing.T) {
	t.Parallel()

	r := NewTextRenderer()

	tests := []struct {
		name string
		enc  opentdb.EncodingType
		in   string
		want string
	}{
		{name: "html entities", enc: opentdb.EncodingHTML, in: "Dungeons &amp; Dragons &quot;5e&quot;", want: `Dungeons & Dragons "5e"`},
		{name: "legacy url", enc: opentdb.EncodingLegacyURL, in: "What+is+2%2B2%3F", want: "What is 2+2?"},
		{name: "rfc3986", enc: opentdb.EncodingRFC3986, in: "What%20is%202+2%3F", want: "What is 2+2?"},
		{name: "base64", enc: opentdb.EncodingBase64, in: "V2hhdCBpcyAyKzI/", want: "What is 2+2?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.DecodeText(tt.enc, tt.in)
			if err != nil {
				t.Fatalf("DecodeText() error = %v", err)
			}
			if got != tt.want {
				t.Fatalf("DecodeText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTextRenderer_DecodeText_BadInput(t *testing.T) {
	t.Parallel()

	r := NewTextRenderer()
	if _, err := r.DecodeText(opentdb.EncodingBase64, "not-base64!!!"); err == nil {
		t.Fatalf("DecodeText() expected error for invalid base64, got nil")
	}
	if _, err := r.DecodeText(opentdb.EncodingLegacyURL, "bad%zz"); err == nil {
		t.Fatalf("DecodeText() expected error for invalid percent escape, got nil")
	}
}

func TestTextRenderer_DecodeQuestion_Multiple(t *testing.T) {
	t.Parallel()

	r := NewTextRenderer()
	q := opentdb.NewMultipleChoiceQuestion(
		opentdb.Category{ID: 14, Name: "Entertainment: Television"},
		opentdb.DifficultyEasy,
		"Who lives in a pineapple under the sea&quest;",
		"SpongeBob &amp; friends",
		[]string{"Patrick &amp; co", "Squidward"},
	)

	got, err := r.DecodeQuestion(opentdb.EncodingHTML, q)
	if err != nil {
		t.Fatalf("DecodeQuestion() error = %v", err)
	}
	mq, err := got.Multiple()
	if err != nil {
		t.Fatalf("Multiple() error = %v", err)
	}
	if mq.CorrectAnswer != "SpongeBob & friends" {
		t.Fatalf("CorrectAnswer = %q, want %q", mq.CorrectAnswer, "SpongeBob & friends")
	}
	if mq.IncorrectAnswers[0] != "Patrick & co" {
		t.Fatalf("IncorrectAnswers[0] = %q, want %q", mq.IncorrectAnswers[0], "Patrick & co")
	}
}

func TestTextRenderer_DecodeQuestion_BooleanKeepsAnswer(t *testing.T) {
	t.Parallel()

	r := NewTextRenderer()
	q := opentdb.NewBooleanQuestion(opentdb.Category{ID: 17, Name: "Science &amp; Nature"}, opentdb.DifficultyHard, "2+2&equals;4", true)

	got, err := r.DecodeQuestion(opentdb.EncodingHTML, q)
	if err != nil {
		t.Fatalf("DecodeQuestion() error = %v", err)
	}
	bq, err := got.Boolean()
	if err != nil {
		t.Fatalf("Boolean() error = %v", err)
	}
	if !bq.CorrectAnswer {
		t.Fatalf("CorrectAnswer = false, want true")
	}
	if got.Category.Name != "Science & Nature" {
		t.Fatalf("Category.Name = %q, want %q", got.Category.Name, "Science & Nature")
	}
}
