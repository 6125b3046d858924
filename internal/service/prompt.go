package service

import (
	"fmt"
	"strings"

	"github.com/nshtkum/perplexchecker/internal/model"
)

// propertyPromptTemplate pins the exact JSON shape the extractor expects.
// The example block matters: models copy it far more reliably than prose.
const propertyPromptTemplate = `Given the property query: "%s"
1. Find the latest pricing information, configuration (2 BHK, 3 BHK etc), area in sq ft, and total cost in INR for each unit type.
2. Extract at least 2 image URLs (interior/exterior) from known listing sources like SquareYards, 99acres, Housing, or MagicBricks.
3. Include the builder/developer name and a list of amenities if available.
4. Respond in JSON format like:
{
  "images": ["image_url_1", "image_url_2"],
  "pricing": [
    {
      "configuration": "2 BHK",
      "area_sqft": "1286",
      "price_inr": "55.3 Lakh"
    },
    {
      "configuration": "3 BHK",
      "area_sqft": "1448",
      "price_inr": "62.3 Lakh"
    }
  ],
  "builder": "Builder Name",
  "amenities": ["Swimming pool", "Gym", "24-hour security"]
}`

const imagePromptTemplate = `Find direct image URLs (interior and exterior photos) for the property: "%s".
Respond with only the direct image URLs, one per line. Each URL must point to an image file (.jpg, .jpeg, .png, .webp or .gif). Do not include any other text, explanation or markdown.`

// BuildPrompt produces the chat prompt for one search request.
// The query must be non-empty after trimming; callers validate at the
// boundary, and calling with an empty query is an INVALID_ARGUMENT error.
func BuildPrompt(query string, kind model.TaskKind) (string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return "", newError(KindInvalidArgument, "query must not be empty", nil)
	}

	switch kind {
	case model.TaskPropertyFacts:
		return fmt.Sprintf(propertyPromptTemplate, query), nil
	case model.TaskImageSearch:
		return fmt.Sprintf(imagePromptTemplate, query), nil
	default:
		return "", newError(KindInvalidArgument, fmt.Sprintf("unknown task kind: %s", kind), nil)
	}
}
