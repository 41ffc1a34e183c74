package ai_fx

import (
	"os"
	"strconv"
	"time"

	"go.uber.org/fx"
	"voya/internal/services"
	"voya/pkg/utils"
)

const defaultCompletionTimeout = 60 * time.Second

var Module = fx.Provide(
	provideAIService, provideCompletionClient)

func provideCompletionClient() utils.CompletionClientInterface {
	timeout := defaultCompletionTimeout
	if raw := os.Getenv("OPENAI_TIMEOUT_SECONDS"); raw != "" {
		if seconds, err := strconv.Atoi(raw); err == nil && seconds > 0 {
			timeout = time.Duration(seconds) * time.Second
		}
	}
	return utils.NewOpenAIClient(os.Getenv("OPENAI_API_KEY"), timeout)
}

func provideAIService(completionClient utils.CompletionClientInterface) services.AIServiceInterface {
	return services.NewAIService(completionClient)
}
