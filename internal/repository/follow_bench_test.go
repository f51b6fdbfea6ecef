package repository

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/d60-Lab/yatube/internal/model"
)

func setupBenchDB(b *testing.B) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		b.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&model.User{}, &model.Post{}, &model.Follow{}); err != nil {
		b.Fatalf("migrate: %v", err)
	}
	return db
}

func BenchmarkFollowWrite(b *testing.B) {
	db := setupBenchDB(b)
	repo := NewFollowRepository(db)
	ctx := context.Background()

	users := make([]model.User, 1000)
	for i := range users {
		users[i] = model.User{Username: fmt.Sprintf("u%04d", i), Email: fmt.Sprintf("u%04d@example.com", i), Password: "p"}
	}
	if err := db.Create(&users).Error; err != nil {
		b.Fatalf("seed users: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		from := users[rand.Intn(len(users))].ID
		to := users[rand.Intn(len(users))].ID
		if from == to {
			continue
		}
		_ = repo.Create(ctx, from, to)
	}
}

func BenchmarkFollowedFeedQuery(b *testing.B) {
	db := setupBenchDB(b)
	followRepo := NewFollowRepository(db)
	postRepo := NewPostRepository(db)
	ctx := context.Background()

	// 一个读者关注 100 个作者，每个作者 50 帖
	reader := model.User{Username: "reader", Email: "reader@example.com", Password: "p"}
	if err := db.Create(&reader).Error; err != nil {
		b.Fatalf("seed reader: %v", err)
	}
	for i := 0; i < 100; i++ {
		author := model.User{Username: fmt.Sprintf("a%03d", i), Email: fmt.Sprintf("a%03d@example.com", i), Password: "p"}
		if err := db.Create(&author).Error; err != nil {
			b.Fatalf("seed author: %v", err)
		}
		_ = followRepo.Create(ctx, reader.ID, author.ID)
		posts := make([]model.Post, 50)
		for j := range posts {
			posts[j] = model.Post{Text: "t", AuthorID: author.ID}
		}
		if err := db.Create(&posts).Error; err != nil {
			b.Fatalf("seed posts: %v", err)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = postRepo.List(ctx, PostFilter{FollowedBy: reader.ID}, 0, 10)
	}
}
