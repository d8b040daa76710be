package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/content-toolbox/internal/domain/content"
	"github.com/KirkDiggler/content-toolbox/internal/repositories/history"
	"github.com/KirkDiggler/content-toolbox/internal/store"
)

func main() {
	ctx := context.Background()

	// Set up Redis
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379/0"
	}
	prefix := os.Getenv("TOOLBOX_REDIS_PREFIX")
	if prefix == "" {
		prefix = store.DefaultRedisPrefix
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatalf("Failed to parse Redis URL: %v", err)
	}

	client := redis.NewClient(opts)
	defer client.Close()

	// Test connection
	if _, pingErr := client.Ping(ctx).Result(); pingErr != nil {
		log.Fatalf("Failed to connect to Redis: %v", pingErr)
	}

	var keys []string
	iter := client.Scan(ctx, 0, prefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		log.Fatalf("Failed to scan keys: %v", err)
	}

	fmt.Printf("Found %d toolbox keys:\n", len(keys))
	for _, key := range keys {
		size, sizeErr := client.StrLen(ctx, key).Result()
		if sizeErr != nil {
			fmt.Printf("  %s: ERROR - %v\n", key, sizeErr)
			continue
		}
		fmt.Printf("  %s: %d bytes\n", key, size)
	}

	if mem, memErr := client.Info(ctx, "memory").Result(); memErr == nil {
		fmt.Printf("\n%s\n", firstLines(mem, 4))
	}

	// Decode the history itself
	raw, err := client.Get(ctx, prefix+history.StorageKey).Result()
	if errors.Is(err, redis.Nil) {
		fmt.Println("\nNo saved history")
		return
	}
	if err != nil {
		log.Fatalf("Failed to get history: %v", err)
	}

	var drafts []*content.Draft
	if err := json.Unmarshal([]byte(raw), &drafts); err != nil {
		fmt.Printf("\nHistory is corrupt and will be ignored on load: %v\n", err)
		return
	}

	fmt.Printf("\nHistory holds %d of %d drafts:\n", len(drafts), history.MaxHistoryItems)
	for _, d := range drafts {
		if d == nil {
			continue
		}
		image := ""
		if d.HasImage() {
			image = fmt.Sprintf(" (image %d bytes)", len(*d.Image))
		}
		fmt.Printf("  %s  %-9s  %s%s\n", d.ID, d.Platform, d.Title, image)
	}
}

func firstLines(s string, n int) string {
	lines := strings.SplitN(s, "\n", n+1)
	if len(lines) > n {
		lines = lines[:n]
	}
	return strings.Join(lines, "\n")
}
