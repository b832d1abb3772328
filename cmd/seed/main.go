package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/01moynul/inkwell-api/internal/auth"
	"github.com/01moynul/inkwell-api/internal/config"
	"github.com/01moynul/inkwell-api/internal/database"
	"github.com/01moynul/inkwell-api/internal/models"
	"github.com/01moynul/inkwell-api/internal/service"
	"github.com/01moynul/inkwell-api/internal/store/sqlstore"
)

var paragraphs = []string{
	"Start with the smallest thing that works, then measure before you optimise.",
	"Every abstraction leaks eventually; pick the ones whose leaks you understand.",
	"Read the error message twice. It usually tells you exactly what went wrong.",
	"Tests are documentation that fails loudly when it goes out of date.",
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	app := &cli.App{
		Name:  "seed",
		Usage: "fill the database with a demo author, categories and articles",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "driver", Value: cfg.DBDriver, Usage: "database driver (mysql or sqlite)"},
			&cli.StringFlag{Name: "dsn", Value: cfg.DBDSN, Usage: "database DSN"},
			&cli.StringFlag{Name: "email", Value: "demo@inkwell.dev", Usage: "demo author email"},
			&cli.StringFlag{Name: "password", Value: "demo-password", Usage: "demo author password"},
			&cli.StringSliceFlag{Name: "categories", Value: cli.NewStringSlice("Go", "Databases", "DevOps"), Usage: "category names"},
			&cli.IntFlag{Name: "per-category", Value: 3, Usage: "articles per category"},
		},
		Action: func(c *cli.Context) error {
			return seed(c.Context, c, cfg)
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func seed(ctx context.Context, c *cli.Context, cfg config.Config) error {
	db, err := database.Open(ctx, c.String("driver"), c.String("dsn"))
	if err != nil {
		return err
	}
	st, err := sqlstore.New(db)
	if err != nil {
		_ = db.Close()
		return err
	}
	defer st.Close()
	if err := st.Migrate(ctx); err != nil {
		return err
	}

	slugify, err := service.SluggerFor(cfg.SlugMode)
	if err != nil {
		return err
	}
	opts := service.Options{Slugify: slugify}
	users := service.NewUserService(st, auth.NewManager(cfg.JWTSecret, cfg.JWTTTL), opts)
	categories := service.NewCategoryService(st, opts)
	articles := service.NewArticleService(st, opts)

	// 1. The demo author, reused when it already exists.
	author, err := users.Register(ctx, models.RegisterUserInput{Email: c.String("email"), Name: "Demo Author", Password: c.String("password")})
	if service.KindOf(err) == service.KindConflict {
		author, err = users.Login(ctx, models.LoginInput{Email: c.String("email"), Password: c.String("password")})
	}
	if err != nil {
		return fmt.Errorf("demo author: %w", err)
	}
	log.Printf("✓ Author: %s", author.User.Email)

	// 2. Categories and their articles.
	existing, err := categories.ListAll(ctx)
	if err != nil {
		return err
	}
	byName := make(map[string]models.Category, len(existing))
	for _, cat := range existing {
		byName[cat.Name] = cat
	}

	created := 0
	for _, name := range c.StringSlice("categories") {
		cat, ok := byName[strings.TrimSpace(name)]
		if !ok {
			if cat, err = categories.Create(ctx, name); err != nil {
				return fmt.Errorf("category %q: %w", name, err)
			}
		}
		log.Printf("✓ Category: %s", cat.Name)

		for i := 1; i <= c.Int("per-category"); i++ {
			n, err := seedArticle(ctx, articles, cat, author.User.ID, i)
			if err != nil {
				return err
			}
			created += n
		}
	}
	log.Printf("Seeding complete: %d new articles", created)
	return nil
}

// seedArticle creates the i-th demo article of cat. The first article of each
// category is featured. It returns 0 when the article already exists.
func seedArticle(ctx context.Context, articles *service.ArticleService, cat models.Category, owner uuid.UUID, i int) (int, error) {
	_, err := articles.Create(ctx, models.CreateArticleInput{
		Title:           fmt.Sprintf("%s Notes, Part %d", cat.Name, i),
		Content:         paragraphs[(i-1)%len(paragraphs)],
		Category:        cat.ID.String(),
		Author:          "Demo Author",
		Tags:            []string{strings.ToLower(cat.Slug), "demo"},
		MetaDescription: fmt.Sprintf("Part %d of the %s series", i, cat.Name),
		Status:          models.StatusPublished,
		ExperienceLevel: fmt.Sprint(i % 3),
		Featured:        i == 1,
	}, owner)
	switch {
	case service.KindOf(err) == service.KindConflict:
		return 0, nil
	case err != nil:
		return 0, fmt.Errorf("article %d of %s: %w", i, cat.Name, err)
	}
	return 1, nil
}
