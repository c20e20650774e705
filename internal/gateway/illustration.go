package gateway

import (
	"context"
	"fmt"
	"iter"

	"github.com/at-ishikawa/lingocard/internal/inference"
)

// illustration is one dependent image request and where its result belongs.
type illustration struct {
	index  int
	prompt string
	attach func(*inference.Image)
}

func componentIllustrations(etymology *inference.Etymology) iter.Seq[illustration] {
	return func(yield func(illustration) bool) {
		for i := range etymology.Components {
			component := &etymology.Components[i]
			task := illustration{
				index:  i,
				prompt: fmt.Sprintf("the Chinese character component %s, meaning %q", component.Fragment, component.Meaning),
				attach: func(image *inference.Image) {
					component.Image = image
				},
			}
			if !yield(task) {
				return
			}
		}
	}
}

func hintIllustrations(dialogue *inference.ReviewDialogue) iter.Seq[illustration] {
	return func(yield func(illustration) bool) {
		for i := range dialogue.Lines {
			line := &dialogue.Lines[i]
			if !line.IsExercise() || line.HintPrompt == "" {
				continue
			}
			task := illustration{
				index:  i,
				prompt: line.HintPrompt,
				attach: func(image *inference.Image) {
					line.HintImage = image
				},
			}
			if !yield(task) {
				return
			}
		}
	}
}

// illustrate resolves tasks one at a time. A failed task is logged and its
// image stays absent; it never fails the parent result.
func (g *Gateway) illustrate(ctx context.Context, op string, tasks iter.Seq[illustration]) {
	for task := range tasks {
		image, err := g.client.GenerateImage(ctx, inference.GenerateImageRequest{
			Prompt:  task.prompt,
			Purpose: op,
		})
		if err != nil {
			g.logger.Warn("illustration failed",
				"op", op,
				"index", task.index,
				"error", err,
			)
			continue
		}
		task.attach(&image)
	}
}
