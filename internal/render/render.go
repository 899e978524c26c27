package render

import (
	"encoding/base64"
	"fmt"
	"html"
	"net/url"

	"opentdb"
)

// Renderer undoes the API's text escaping so questions and answers can be
// shown to a person.
type Renderer interface {
	// DecodeText reverses enc on a single string.
	DecodeText(enc opentdb.EncodingType, s string) (string, error)

	// DecodeQuestion returns a copy of q with its text, category name, and
	// answers decoded.
	DecodeQuestion(enc opentdb.EncodingType, q opentdb.Question) (opentdb.Question, error)
}

// TextRenderer decodes the four encoding schemes the API can apply.
type TextRenderer struct{}

func NewTextRenderer() *TextRenderer { return &TextRenderer{} }

func (r *TextRenderer) DecodeText(enc opentdb.EncodingType, s string) (string, error) {
	switch enc {
	case opentdb.EncodingHTML:
		return html.UnescapeString(s), nil
	case opentdb.EncodingLegacyURL:
		// Legacy URL encoding uses + for spaces.
		out, err := url.QueryUnescape(s)
		if err != nil {
			return "", fmt.Errorf("decode legacy url text: %w", err)
		}
		return out, nil
	case opentdb.EncodingRFC3986:
		// RFC 3986 percent-encodes spaces; + is a literal plus.
		out, err := url.PathUnescape(s)
		if err != nil {
			return "", fmt.Errorf("decode rfc3986 text: %w", err)
		}
		return out, nil
	case opentdb.EncodingBase64:
		out, err := base64.StdEncoding.DecodeString(s)
		if err != nil {
			return "", fmt.Errorf("decode base64 text: %w", err)
		}
		return string(out), nil
	default:
		return "", fmt.Errorf("unsupported encoding: %q", string(enc))
	}
}

func (r *TextRenderer) DecodeQuestion(enc opentdb.EncodingType, q opentdb.Question) (opentdb.Question, error) {
	text, err := r.DecodeText(enc, q.Text)
	if err != nil {
		return opentdb.Question{}, err
	}
	category := q.Category
	category.Name, err = r.DecodeText(enc, category.Name)
	if err != nil {
		return opentdb.Question{}, err
	}

	switch q.Type {
	case opentdb.TypeBoolean:
		bq, err := q.Boolean()
		if err != nil {
			return opentdb.Question{}, err
		}
		return opentdb.NewBooleanQuestion(category, q.Difficulty, text, bq.CorrectAnswer), nil
	case opentdb.TypeMultiple:
		mq, err := q.Multiple()
		if err != nil {
			return opentdb.Question{}, err
		}
		correct, err := r.DecodeText(enc, mq.CorrectAnswer)
		if err != nil {
			return opentdb.Question{}, err
		}
		incorrect := make([]string, 0, len(mq.IncorrectAnswers))
		for _, a := range mq.IncorrectAnswers {
			dec, err := r.DecodeText(enc, a)
			if err != nil {
				return opentdb.Question{}, err
			}
			incorrect = append(incorrect, dec)
		}
		return opentdb.NewMultipleChoiceQuestion(category, q.Difficulty, text, correct, incorrect), nil
	default:
		return opentdb.Question{}, fmt.Errorf("unsupported question type: %q", string(q.Type))
	}
}
