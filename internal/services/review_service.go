package services

import (
	"context"
	"time"

	"paddlemarket/internal/domain"
	"paddlemarket/internal/repository"
)

type CreateReviewInput struct {
	Name      string
	Text      string
	Rating    int
	ProductID uint64
	UserID    *uint64
}

type ReviewService struct {
	reviews  repository.ReviewRepository
	products repository.ProductRepository
	users    repository.UserRepository
}

func NewReviewService(
	reviews repository.ReviewRepository,
	products repository.ProductRepository,
	users repository.UserRepository,
) *ReviewService {
	return &ReviewService{reviews: reviews, products: products, users: users}
}

func (s *ReviewService) GetReviews(ctx context.Context) ([]domain.Review, error) {
	return s.reviews.FindAll(ctx)
}

func (s *ReviewService) GetReview(ctx context.Context, id uint64) (*domain.Review, error) {
	r, err := s.reviews.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.NotFound("review", id)
	}
	return r, nil
}

func (s *ReviewService) GetReviewsByProduct(ctx context.Context, productID uint64) ([]domain.Review, error) {
	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.NotFound("product", productID)
	}
	return s.reviews.FindByProduct(ctx, productID)
}

func (s *ReviewService) CreateReview(ctx context.Context, in CreateReviewInput) (*domain.Review, error) {
	if in.Rating < 1 || in.Rating > 5 {
		return nil, domain.Invalidf("rating must be between 1 and 5")
	}

	product, err := s.products.FindByID(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.NotFound("product", in.ProductID)
	}

	if in.UserID != nil {
		user, err := s.users.FindByID(ctx, *in.UserID)
		if err != nil {
			return nil, err
		}
		if user == nil {
			return nil, domain.NotFound("user", *in.UserID)
		}
	}

	review := &domain.Review{
		Name:      in.Name,
		Text:      in.Text,
		Rating:    in.Rating,
		ProductID: in.ProductID,
		UserID:    in.UserID,
		Date:      time.Now(),
	}
	if err := s.reviews.Create(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *ReviewService) UpdateReview(ctx context.Context, id uint64, text *string, rating *int) (*domain.Review, error) {
	review, err := s.GetReview(ctx, id)
	if err != nil {
		return nil, err
	}

	if rating != nil {
		if *rating < 1 || *rating > 5 {
			return nil, domain.Invalidf("rating must be between 1 and 5")
		}
		review.Rating = *rating
	}
	if text != nil {
		review.Text = *text
	}

	if err := s.reviews.Update(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *ReviewService) DeleteReview(ctx context.Context, id uint64) error {
	review, err := s.GetReview(ctx, id)
	if err != nil {
		return err
	}
	return s.reviews.Delete(ctx, review)
}
