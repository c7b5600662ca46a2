package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"strconv"
	"time"

	"tripdraft/db"
	"tripdraft/internal/metrics"
	"tripdraft/internal/model"
	"tripdraft/internal/repository"
	"tripdraft/pkg/llm"
	"tripdraft/pkg/search"
	"tripdraft/pkg/verify"

	"github.com/joho/godotenv"
)

const maxRetries = 3

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	err := db.ConnectRedis()
	if err != nil {
		log.Fatalf("error connecting to Redis: %v", err)
	}
	defer db.CloseRedis()

	err = db.Connect()
	if err != nil {
		log.Fatalf("error connecting to DB: %v", err)
	}
	defer db.Close()

	guideRepository := repository.NewGuideRepository(db.DB)

	searchClient := search.NewSerpAPIClient(os.Getenv("SERPAPI_API_KEY"))

	genClient := generationClient()
	orchestrator := verify.NewOrchestrator(verifiers()...)

	ctx := context.Background()

	for {
		id, err := db.PopFromQueue(db.GenerateQueueKey, 0)
		if err != nil {
			slog.Error("error popping from Redis queue", "error", err)
			break
		}

		if depth, err := db.QueueLength(db.GenerateQueueKey); err == nil {
			metrics.QueueDepth.Set(float64(depth))
		}

		guideID, err := strconv.ParseInt(id, 10, 64)
		if err != nil {
			slog.Error("invalid guide id in queue", "id", id, "error", err)
			continue
		}

		errorCount, err := guideRepository.GetErrorCount(guideID)
		if err != nil {
			slog.Error("error getting error count", "error", err, "guide_id", guideID)
			continue
		}

		if errorCount >= maxRetries {
			slog.Warn("guide exceeded max retries, marking as failed", "guide_id", guideID, "error_count", errorCount)
			guideRepository.UpdateStatus(guideID, model.StatusFailed)
			db.PushToQueue(db.DeadLetterKey, id)
			continue
		}

		guide, err := guideRepository.GetByID(guideID)
		if err != nil {
			slog.Error("error getting guide from DB", "error", err, "guide_id", guideID)
			continue
		}

		if guide == nil {
			slog.Warn("guide not found in DB", "guide_id", guideID)
			continue
		}

		guideRepository.UpdateStatus(guideID, model.StatusProcessing)

		err = processGuide(ctx, guideRepository, searchClient, genClient, orchestrator, guide)
		if err != nil {
			slog.Error("error processing guide", "error", err, "guide_id", guideID)
			metrics.GuidesFailed.WithLabelValues("pipeline").Inc()

			guideRepository.SaveError(guideID, err.Error(), "pipeline_error")

			db.PushToQueue(db.GenerateQueueKey, id)

			time.Sleep(5 * time.Second)
			continue
		}

		metrics.GuidesGenerated.WithLabelValues(guide.ModelUsed).Inc()
		slog.Info("guide generated successfully", "guide_id", guide.ID, "model", guide.ModelUsed)
	}
}

func processGuide(ctx context.Context, repo *repository.GuideRepository, searchClient search.Client, genClient llm.ChatClient, orchestrator *verify.Orchestrator, guide *model.Guide) error {
	sources, err := search.FetchSources(ctx, searchClient, guide.Topic+" "+guide.Subject, guide.Freshness)
	if err != nil {
		metrics.SearchRequests.WithLabelValues(searchClient.Name(), "error").Inc()
		return err
	}
	metrics.SearchRequests.WithLabelValues(searchClient.Name(), "ok").Inc()

	sourceURLs := search.URLs(sources)

	systemPrompt, prompt := llm.BuildGuidePrompt(guide.Topic, guide.Subject, sourceURLs, guide.MinimumLinks)

	content, err := llm.GenerateWithLinks(ctx, genClient, llm.GenerateRequest{
		Prompt:       prompt,
		Sources:      sourceURLs,
		SystemPrompt: systemPrompt,
		MinimumLinks: guide.MinimumLinks,
	})
	if err != nil {
		return err
	}

	verdict := orchestrator.VerifyOutput(ctx, content, sources)
	for _, p := range verdict.Providers {
		metrics.VerificationVerdicts.WithLabelValues(p.Provider, string(p.Status)).Inc()
	}

	style := verify.VerifyTravelStyle(content, guide.Subject)

	guide.Content = content
	guide.Sources = sourceURLs
	guide.ModelUsed = genClient.Name()

	return repo.SaveCompletedWithVerdict(guide, &model.GuideVerdict{
		GuideID:      guide.ID,
		Passed:       verdict.Passed,
		Inconclusive: verdict.Inconclusive,
		Issues:       verdict.Issues,
		StyleValid:   style.IsValid,
		StyleIssues:  style.Issues,
	})
}

// generationClient prefers Anthropic when its key is set, otherwise OpenAI.
func generationClient() llm.ChatClient {
	if key := os.Getenv("ANTHROPIC_API_KEY"); key != "" {
		return llm.NewAnthropicClient(key)
	}
	return llm.NewOpenAIClient(os.Getenv("OPENAI_API_KEY"))
}

// verifiers builds the independent verification providers. Grok joins only
// when an xAI key is configured; OpenAI always verifies.
func verifiers() []verify.Verifier {
	var vs []verify.Verifier
	if key := os.Getenv("XAI_API_KEY"); key != "" {
		vs = append(vs, verify.NewGrokVerifier(llm.NewXAIClient(key)))
	}
	vs = append(vs, verify.NewOpenAIVerifier(llm.NewOpenAIClient(os.Getenv("OPENAI_API_KEY"))))
	return vs
}
