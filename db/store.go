package db

import (
	"context"
	"fmt"

	"nexus/models"
)

// ListPosts returns the feed newest-first, each row enriched with the
// owning user's public fields. An empty postType disables the filter.
func (s *Store) ListPosts(ctx context.Context, postType string) ([]models.FeedPost, error) {
	query := s.read(ctx).
		Table("posts").
		Select("posts.*, users.display_name, users.username, users.avatar").
		Joins("JOIN users ON posts.user_id = users.id").
		Order("posts.created_at DESC")

	if postType != "" {
		query = query.Where("posts.type = ?", postType)
	}

	posts := make([]models.FeedPost, 0)
	if err := query.Scan(&posts).Error; err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, nil
}

// ListProducts returns every product in store-natural order.
func (s *Store) ListProducts(ctx context.Context) ([]models.Product, error) {
	products := make([]models.Product, 0)
	if err := s.read(ctx).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// GetUserByUsername looks up a user by exact username. Returns
// gorm.ErrRecordNotFound when no row matches.
func (s *Store) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := s.read(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// CreatePost inserts a single post. The store assigns the identity and
// creation timestamp; both are populated on the model after the insert.
func (s *Store) CreatePost(ctx context.Context, post *models.Post) error {
	if err := s.write(ctx).Create(post).Error; err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}
	return nil
}
