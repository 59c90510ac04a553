package methods

import (
	"strings"

	"github.com/resolvai/resolvai/internal/domain"
)

// BuildDiary saves a free-form entry. Tags come as one comma-separated
// string; blank tags are discarded.
func BuildDiary(title, content, tags string) (*domain.Study, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, validation("Escreva algo antes de salvar.")
	}

	title = strings.TrimSpace(title)
	if title == "" {
		title = "Entrada de Diário"
	}
	tagList := nonEmpty(strings.Split(tags, ","))

	analysis := title + "\n\n" + content
	if len(tagList) > 0 {
		analysis += "\n\nTags: " + strings.Join(tagList, ", ")
	}

	data := &domain.DiaryData{
		Title:    title,
		Content:  content,
		Tags:     tagList,
		Analysis: analysis,
	}
	return &domain.Study{
		Method: domain.MethodDiary,
		Title:  title,
		Data:   data,
	}, nil
}
