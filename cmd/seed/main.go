package main

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/d60-Lab/yatube/internal/config"
	"github.com/d60-Lab/yatube/internal/db"
	"github.com/d60-Lab/yatube/internal/model"
	"github.com/d60-Lab/yatube/internal/repository"
	"github.com/d60-Lab/yatube/pkg/logger"
)

// Loads demo fixtures: a couple of groups (group creation has no end-user
// flow, this stands in for the admin console) plus demo authors and posts.
func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}
	if err := logger.Init(cfg.Env); err != nil {
		panic(err)
	}
	defer logger.Sync()

	gdb, err := db.Open(cfg.Database)
	if err != nil {
		logger.Fatal("database open failed", zap.Error(err))
	}
	ctx := context.Background()

	groupRepo := repository.NewGroupRepository(gdb)
	userRepo := repository.NewUserRepository(gdb)
	postRepo := repository.NewPostRepository(gdb)

	groups := []*model.Group{
		{Title: "Go", Slug: "go", Description: "Everything about Go"},
		{Title: "Random", Slug: "random", Description: "Off topic"},
	}
	for _, g := range groups {
		if err := groupRepo.Create(ctx, g); err != nil {
			logger.Warn("group exists, skipping", zap.String("slug", g.Slug))
		}
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	for i := 1; i <= 3; i++ {
		u := &model.User{
			Username: fmt.Sprintf("author%d", i),
			Email:    fmt.Sprintf("author%d@example.com", i),
			Password: string(hash),
		}
		if err := userRepo.Create(ctx, u); err != nil {
			logger.Warn("user exists, skipping", zap.String("username", u.Username))
			continue
		}
		for j := 0; j < 5; j++ {
			p := &model.Post{
				Text:      fmt.Sprintf("Demo post %d by %s", j+1, u.Username),
				AuthorID:  u.ID,
				GroupID:   &groups[j%len(groups)].ID,
				CreatedAt: time.Now().Add(-time.Duration(j) * time.Hour),
			}
			if err := postRepo.Create(ctx, p); err != nil {
				logger.Error("seed post failed", zap.Error(err))
			}
		}
	}
	logger.Info("fixtures loaded")
}
