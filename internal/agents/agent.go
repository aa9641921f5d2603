package agents

import (
	"context"

	"google.golang.org/adk/agent"
	"google.golang.org/adk/agent/llmagent"
	"google.golang.org/adk/model/gemini"
	"google.golang.org/genai"

	"waypoint/internal/agents/callbacks"
	"waypoint/internal/tools"
	"waypoint/pkg/errors"
)

const defaultInstruction = `You are a travel assistant with access to Google Maps.
Use the available tools to search for restaurants, attractions and hotels,
plan routes between places and resolve addresses or coordinates.
Prefer concrete tool results over guesses; when a search returns nothing,
say so instead of inventing places.`

// Config captures runtime settings for the travel assistant agent.
type Config struct {
	Name string
	// Model is the Gemini model name, e.g. "gemini-2.5-flash"
	Model  string
	APIKey string
	// Instruction overrides the default system instruction when non-empty
	Instruction string
}

// NewTravelAssistant assembles an LLM agent exposing every registered tool.
func NewTravelAssistant(ctx context.Context, cfg Config, registry *tools.Registry) (agent.Agent, error) {
	if cfg.Model == "" {
		return nil, errors.New("agent model is required")
	}

	model, err := gemini.NewModel(ctx, cfg.Model, &genai.ClientConfig{
		APIKey: cfg.APIKey,
	})
	if err != nil {
		return nil, errors.Wrap(err, "create gemini model")
	}

	name := cfg.Name
	if name == "" {
		name = "travel_assistant"
	}
	instruction := cfg.Instruction
	if instruction == "" {
		instruction = defaultInstruction
	}

	return llmagent.New(llmagent.Config{
		Name:        name,
		Model:       model,
		Description: "Travel assistant that searches places, plans routes and resolves addresses via Google Maps.",
		Instruction: instruction,
		Tools:       registry.Tools(),
		BeforeToolCallbacks: []llmagent.BeforeToolCallback{
			callbacks.MetricsBeforeToolCallback(),
		},
		AfterToolCallbacks: []llmagent.AfterToolCallback{
			callbacks.MetricsAfterToolCallback(),
			callbacks.AuditLogAfterToolCallback(),
		},
	})
}
