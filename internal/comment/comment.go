package comment

import (
	"strings"
	"time"

	internal "github.com/govflow/govflow/internal"
	commentDatamodel "github.com/govflow/govflow/internal/core/datamodel/comment"
	"github.com/google/uuid"
)

type Comment struct {
	ID         string    `json:"id"`
	DocumentID string    `json:"document_id"`
	AuthorID   string    `json:"author_id"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"created_at"`
}

var ErrEmptyComment = internal.ErrEmptyComment

// NewComment trims the text and rejects blank comments.
func NewComment(documentID, authorID, text string) (*Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyComment
	}

	return &Comment{
		ID:         uuid.New().String(),
		DocumentID: documentID,
		AuthorID:   authorID,
		Text:       text,
		CreatedAt:  time.Now(),
	}, nil
}

func ToDataModel(c *Comment) *commentDatamodel.Comment {
	return &commentDatamodel.Comment{
		ID:         c.ID,
		DocumentID: c.DocumentID,
		AuthorID:   c.AuthorID,
		Text:       c.Text,
		CreatedAt:  c.CreatedAt,
	}
}

func FromDataModel(c *commentDatamodel.Comment) *Comment {
	return &Comment{
		ID:         c.ID,
		DocumentID: c.DocumentID,
		AuthorID:   c.AuthorID,
		Text:       c.Text,
		CreatedAt:  c.CreatedAt,
	}
}

func FromDataModelSlice(comments []*commentDatamodel.Comment) []*Comment {
	result := make([]*Comment, len(comments))
	for i, c := range comments {
		result[i] = FromDataModel(c)
	}
	return result
}
