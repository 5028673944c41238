// Package feed serves the storefront's mocked social feed. Posts are
// static; a fixed artificial delay stands in for the real network call a
// production integration would make.
package feed

import (
	"context"
	"time"
)

type Post struct {
	ID        string    `json:"id"`
	ImageURL  string    `json:"image_url"`
	Caption   string    `json:"caption"`
	Permalink string    `json:"permalink"`
	Timestamp time.Time `json:"timestamp"`
}

const defaultDelay = time.Second

type Feed struct {
	username string
	delay    time.Duration
	posts    []Post
}

func NewFeed(username string) *Feed {
	return &Feed{
		username: username,
		delay:    defaultDelay,
		posts:    mockPosts,
	}
}

// Latest returns up to limit posts after the artificial delay, or earlier
// if the context is cancelled.
func (f *Feed) Latest(ctx context.Context, limit int) ([]Post, error) {
	timer := time.NewTimer(f.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-timer.C:
	}

	if limit <= 0 || limit > len(f.posts) {
		limit = len(f.posts)
	}
	return f.posts[:limit], nil
}

func (f *Feed) Username() string {
	return f.username
}

var mockPosts = []Post{
	{
		ID:        "1",
		ImageURL:  "/img1.png",
		Caption:   "Our new spring collection has arrived! #TorontoFlorist #SpringFlowers",
		Permalink: "https://instagram.com/p/mock1",
		Timestamp: time.Date(2025, time.February, 20, 12, 0, 0, 0, time.UTC),
	},
	{
		ID:        "2",
		ImageURL:  "/img2.png",
		Caption:   "Beautiful wedding arrangement for Sarah & Michael's special day #WeddingFlowers",
		Permalink: "https://instagram.com/p/mock2",
		Timestamp: time.Date(2025, time.February, 18, 15, 30, 0, 0, time.UTC),
	},
	{
		ID:        "3",
		ImageURL:  "/img3.png",
		Caption:   "Behind the scenes at our Ossington studio today! #FloristLife",
		Permalink: "https://instagram.com/p/mock3",
		Timestamp: time.Date(2025, time.February, 15, 9, 45, 0, 0, time.UTC),
	},
	{
		ID:        "4",
		ImageURL:  "/img4.png",
		Caption:   "Our dried flower collection is perfect for long-lasting beauty. #SustainableFlowers",
		Permalink: "https://instagram.com/p/mock4",
		Timestamp: time.Date(2025, time.February, 12, 14, 20, 0, 0, time.UTC),
	},
	{
		ID:        "5",
		ImageURL:  "/img5.png",
		Caption:   "Last chance to order our Valentine's Day special arrangements! #LoveIsInTheAir",
		Permalink: "https://instagram.com/p/mock5",
		Timestamp: time.Date(2025, time.February, 10, 11, 15, 0, 0, time.UTC),
	},
	{
		ID:        "6",
		ImageURL:  "/img6.png",
		Caption:   "Fresh flowers just arrived from our local farms! #FreshFlowers #LocallySourced",
		Permalink: "https://instagram.com/p/mock6",
		Timestamp: time.Date(2025, time.February, 8, 16, 40, 0, 0, time.UTC),
	},
}
