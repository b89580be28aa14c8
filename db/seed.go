package db

import (
	"context"
	"fmt"
	"strings"

	"nexus/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/sirupsen/logrus"
)

func strPtr(s string) *string {
	return &s
}

// Seed inserts the initial demo rows: two users, three posts, three
// products. Guarded by the users table being empty, so it runs exactly
// once per database lifetime and a restart never reseeds. The guard reads
// the master so a stale replica cannot trigger a double insert.
func (s *Store) Seed(ctx context.Context) error {
	var userCount int64
	if err := s.write(ctx).Model(&models.User{}).Count(&userCount).Error; err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if userCount > 0 {
		logrus.Debug("seed: users table is not empty, skipping")
		return nil
	}

	john := models.User{
		Username:    "johndoe",
		DisplayName: "John Doe",
		Avatar:      "https://picsum.photos/seed/john/200",
		Bio:         "Tech enthusiast & traveler",
	}
	jane := models.User{
		Username:    "janedoe",
		DisplayName: "Jane Smith",
		Avatar:      "https://picsum.photos/seed/jane/200",
		Bio:         "Designer & Coffee Lover",
	}
	for _, user := range []*models.User{&john, &jane} {
		if err := s.write(ctx).Create(user).Error; err != nil {
			return fmt.Errorf("failed to seed user %s: %w", user.Username, err)
		}
	}

	posts := []models.Post{
		{
			UserID:  john.ID,
			Content: "Just launched my new project on Nexus! #tech #launch",
			Image:   strPtr("https://picsum.photos/seed/project/800/600"),
			Type:    models.SOCIAL,
		},
		{
			UserID:  jane.ID,
			Content: "Beautiful morning in the city.",
			Image:   strPtr("https://picsum.photos/seed/city/800/600"),
			Type:    models.SOCIAL,
		},
		{
			UserID:  john.ID,
			Content: "Looking for a Senior React Developer to join our team! #hiring #jobs",
			Type:    models.PROFESSIONAL,
		},
	}
	for i := range posts {
		if err := s.write(ctx).Create(&posts[i]).Error; err != nil {
			return fmt.Errorf("failed to seed post: %w", err)
		}
	}

	products := []models.Product{
		{
			Name:        "Wireless Headphones",
			Description: "High-quality noise-canceling headphones.",
			Price:       199.99,
			Image:       "https://picsum.photos/seed/headphones/400",
			Category:    "Electronics",
		},
		{
			Name:        "Smart Watch",
			Description: "Track your fitness and stay connected.",
			Price:       249.50,
			Image:       "https://picsum.photos/seed/watch/400",
			Category:    "Electronics",
		},
		{
			Name:        "Leather Wallet",
			Description: "Classic slim design made from genuine leather.",
			Price:       45.00,
			Image:       "https://picsum.photos/seed/wallet/400",
			Category:    "Accessories",
		},
	}
	for i := range products {
		if err := s.write(ctx).Create(&products[i]).Error; err != nil {
			return fmt.Errorf("failed to seed product: %w", err)
		}
	}

	logrus.WithFields(logrus.Fields{
		"users":    2,
		"posts":    len(posts),
		"products": len(products),
	}).Info("seeded initial demo data")
	return nil
}

// SeedDemo inserts extra generated users and posts on top of the base
// seed. Off by default; useful when the UI needs a fuller feed to scroll.
func (s *Store) SeedDemo(ctx context.Context, userCount, postCount int) error {
	if userCount <= 0 && postCount <= 0 {
		return nil
	}

	userIDs := make([]int64, 0, userCount+2)
	if err := s.write(ctx).Model(&models.User{}).Pluck("id", &userIDs).Error; err != nil {
		return fmt.Errorf("failed to list user ids: %w", err)
	}

	for i := 0; i < userCount; i++ {
		name := gofakeit.FirstName()
		user := models.User{
			Username:    fmt.Sprintf("%s_%s", strings.ToLower(name), gofakeit.Numerify("######")),
			DisplayName: fmt.Sprintf("%s %s", name, gofakeit.LastName()),
			Avatar:      fmt.Sprintf("https://picsum.photos/seed/%s/200", gofakeit.Numerify("####")),
			Bio:         gofakeit.JobTitle(),
		}
		if err := s.write(ctx).Create(&user).Error; err != nil {
			return fmt.Errorf("failed to seed demo user: %w", err)
		}
		userIDs = append(userIDs, user.ID)
	}

	if len(userIDs) == 0 {
		return nil
	}

	types := []string{string(models.SOCIAL), string(models.PROFESSIONAL), string(models.STORY)}
	for i := 0; i < postCount; i++ {
		post := models.Post{
			UserID:  userIDs[gofakeit.Number(0, len(userIDs)-1)],
			Content: gofakeit.Sentence(12),
			Type:    models.PostType(gofakeit.RandomString(types)),
		}
		if err := s.write(ctx).Create(&post).Error; err != nil {
			return fmt.Errorf("failed to seed demo post: %w", err)
		}
	}

	logrus.WithFields(logrus.Fields{"users": userCount, "posts": postCount}).
		Info("seeded extra demo data")
	return nil
}
