package client

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/schema"
)

// Model names the extraction supports. The turbo models handle the long
// structured prompt better; GPT4Turbo is the default for quality.
const (
	GPT3Turbo = "gpt-3.5-turbo-1106"
	GPT4Turbo = "gpt-4-1106-preview"
)

const extractionPromptFile = "prompts/graph_extraction.txt"

// OpenAIClient extracts knowledge graphs from note chunks.
type OpenAIClient struct {
	ChatModel openai.ChatModel
	Key       string
}

func NewOpenAIClient(ctx context.Context, key string) (*OpenAIClient, error) {
	model, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
		APIKey: key,
		Model:  GPT4Turbo,
	})
	if err != nil {
		log.Printf("Error creating OpenAI client: %v", err)
		return nil, err
	}

	return &OpenAIClient{ChatModel: *model, Key: key}, nil
}

// ExtractKnowledgeGraph runs one extraction call over a chunk of note text.
// allowedNodes and allowedRels constrain the labels the model may emit; nil
// leaves them unconstrained. The returned graph is normalized (title-cased
// node ids, snake-cased property keys).
func (o *OpenAIClient) ExtractKnowledgeGraph(ctx context.Context, chunk string, allowedNodes, allowedRels []string) (*KnowledgeGraph, error) {
	system, err := extractionPrompt(allowedNodes, allowedRels)
	if err != nil {
		return nil, err
	}

	messages := []*schema.Message{
		schema.SystemMessage(system),
		schema.UserMessage("Use the given format to extract information from the following input: " + chunk),
		schema.UserMessage("Tip: Make sure to answer in the correct format"),
	}

	resp, err := o.ChatModel.Generate(ctx, messages)
	if err != nil {
		return nil, fmt.Errorf("graph extraction: %w", err)
	}

	graph, err := parseGraph(resp.Content)
	if err != nil {
		return nil, err
	}

	for i, n := range graph.Nodes {
		graph.Nodes[i] = NormalizeNode(n)
	}
	for i, r := range graph.Rels {
		graph.Rels[i] = NormalizeRelationship(r)
	}
	return graph, nil
}

func extractionPrompt(allowedNodes, allowedRels []string) (string, error) {
	data, err := embeddedPrompts.ReadFile(extractionPromptFile)
	if err != nil {
		return "", fmt.Errorf("load extraction prompt: %w", err)
	}

	var b strings.Builder
	b.Write(data)
	if len(allowedNodes) > 0 {
		b.WriteString("\n- **Allowed Node Labels:** " + strings.Join(allowedNodes, ", "))
	}
	if len(allowedRels) > 0 {
		b.WriteString("\n- **Allowed Relationship Types:** " + strings.Join(allowedRels, ", "))
	}
	return b.String(), nil
}

// parseGraph tolerates a fenced JSON block around the object; some models
// wrap structured output in markdown fences despite instructions.
func parseGraph(content string) (*KnowledgeGraph, error) {
	text := strings.TrimSpace(content)
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(strings.TrimSpace(text), "```")
		text = strings.TrimSpace(text)
	}

	var graph KnowledgeGraph
	if err := json.Unmarshal([]byte(text), &graph); err != nil {
		return nil, fmt.Errorf("parse extraction output: %w", err)
	}
	return &graph, nil
}
