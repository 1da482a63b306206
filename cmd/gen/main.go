package main

import (
	"biblio/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.StudentModel{},
		model.AuthorModel{},
		model.CategoryModel{},
		model.BookModel{},
		model.BorrowModel{},
		model.ReviewModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
