// Package appmode provides 2 methods to work in preliminarily defined mode 'search' and 'serve'
package appmode

import (
	"context"
	"log"
	"os"

	"github.com/UnendingLoop/GrepLite/internal/model"
	"github.com/UnendingLoop/GrepLite/internal/processor"
	"github.com/UnendingLoop/GrepLite/internal/reader"
	"github.com/UnendingLoop/GrepLite/internal/render"
	"github.com/docker/distribution/uuid"
)

func RunSearch(ctx context.Context, stop context.CancelFunc, ai *model.AppInit) {
	defer stop()

	// прочитать весь вход - файл либо stdin
	text, err := reader.ReadInput(nil, ai.SearchParam.Source)
	if err != nil {
		log.Printf("Something went wrong while reading input: %q", err.Error())
		return
	}

	// превращаем вход в задание и выполняем локально
	task := model.SearchTask{
		TaskID: uuid.Generate().String(),
		SP:     ai.SearchParam,
		Text:   text,
	}
	reply := processor.Processor{}.ProcessTask(ctx, &task)

	// печатаем результат
	render.WriteReply(os.Stdout, reply, &ai.SearchParam)
}
