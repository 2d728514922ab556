package main

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sashabaranov/go-openai"
)

// SuggestColumns asks OpenAI to pick the transaction lookup column,
// the account lookup column, and the amount column from the two header
// lists. It only runs when selections are missing and a key is
// configured; any failure is returned so the caller can fall back to
// the normal validation error.
func SuggestColumns(oai *openai.Client, transactionHeaders, accountHeaders []string) (ColumnSuggestion, error) {
	var prompt strings.Builder
	prompt.WriteString("I want to match rows of a transactions spreadsheet against rows of an accounts spreadsheet by a shared lookup value, then sum a transaction amount column per account.\n")
	prompt.WriteString("The transactions spreadsheet has the following columns: ")
	prompt.WriteString(strings.Join(transactionHeaders, ", "))
	prompt.WriteString("\nThe accounts spreadsheet has the following columns: ")
	prompt.WriteString(strings.Join(accountHeaders, ", "))
	prompt.WriteString("\n\nPlease respond with JSON using \"TransactionLookup\" (the transactions column holding the value shared with the accounts spreadsheet), \"AccountLookup\" (the accounts column holding that shared value), and \"Amount\" (the transactions column holding the money amount). Use the column names exactly as given. Please respond only in JSON, do not respond in anything other than JSON, No English unless in JSON format.")

	var modifiedResp string
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// GPT3Dot5TurboInstruct
	if cli.OpenAIModel == openai.GPT3Dot5TurboInstruct {
		req := openai.CompletionRequest{
			Model:     cli.OpenAIModel,
			Prompt:    prompt.String(),
			MaxTokens: 256,
		}
		resp, err := oai.CreateCompletion(ctx, req)
		if err != nil {
			log.Error().Err(err).Msgf("Error with ChatGPT/OpenAI : %v", err)
			return ColumnSuggestion{}, err
		}

		modifiedResp = resp.Choices[0].Text
	} else {
		resp, err := oai.CreateChatCompletion(
			ctx,
			openai.ChatCompletionRequest{
				Model: cli.OpenAIModel,
				Messages: []openai.ChatCompletionMessage{
					{
						Role:    openai.ChatMessageRoleAssistant,
						Content: prompt.String(),
					},
				},
			},
		)

		if err != nil {
			log.Error().Err(err).Msgf("Error with ChatGPT/OpenAI chat request")
			return ColumnSuggestion{}, err
		}

		if len(resp.Choices) != 1 {
			log.Error().Msgf("Unexpected number of choices %v", resp.Choices)
			return ColumnSuggestion{}, errors.New("unexpected number of choices")
		}

		modifiedResp = resp.Choices[0].Message.Content
	}

	// Some ChatGPT models send us ```JSON {}``` instead of just JSON, so we have to parse it.
	if strings.Contains(modifiedResp, "```") {
		modifiedResp = strings.TrimPrefix(modifiedResp, "```json")
		modifiedResp = strings.TrimPrefix(modifiedResp, "```")
		modifiedResp = strings.TrimSuffix(modifiedResp, "```")
		modifiedResp = strings.TrimSpace(modifiedResp)
	}

	var suggestion ColumnSuggestion
	if err := json.Unmarshal([]byte(modifiedResp), &suggestion); err != nil {
		log.Warn().Err(err).Msgf("ChatGPT responded with invalid JSON response.")
		return ColumnSuggestion{}, err
	}

	log.Info().Msgf("🤖 [ChatGPT] Suggested columns: lookup %s/%s, amount %s", suggestion.TransactionLookup, suggestion.AccountLookup, suggestion.Amount)
	return suggestion, nil
}
