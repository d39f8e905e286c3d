package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"freelance-hub/internal/chatbot"
	"freelance-hub/internal/infrastructure/embedding"

	"github.com/joho/godotenv"
)

// chatcli runs the intent pipeline against stdin without a database, useful
// for trying out rule patterns and the semantic fallback locally.
func main() {
	_ = godotenv.Load()

	logger := log.New(os.Stderr, "", log.LstdFlags)

	var semantic *chatbot.SemanticFallback
	baseURL := strings.TrimSpace(os.Getenv("EMBEDDING_BASE_URL"))
	if baseURL != "" {
		embedder := embedding.NewHTTPEmbedder(baseURL, 10*time.Second, logger)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		var err error
		semantic, err = chatbot.NewSemanticFallback(ctx, embedder, chatbot.DefaultSimilarityThreshold)
		cancel()
		if err != nil {
			logger.Fatalf("failed to init semantic fallback: %v", err)
		}
	} else {
		logger.Printf("EMBEDDING_BASE_URL not set, rule tier only")
	}

	gen := chatbot.NewResponseGenerator(chatbot.Profile{}, nil, nil)
	bot := chatbot.NewBot(chatbot.NewRuleClassifier(), semantic, gen)

	fmt.Println("Freelance assistant. Type a question, or 'quit' to exit.")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			break
		}

		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		intent, matched, reply, err := bot.Respond(ctx, line)
		cancel()
		if err != nil {
			fmt.Printf("error: %v\n", err)
			continue
		}
		if matched {
			fmt.Printf("[%s] %s\n", intent, reply)
			continue
		}
		fmt.Println(reply)
	}
}
