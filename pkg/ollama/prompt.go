package ollama

import "fmt"

// DeadlineExtractionSystemPrompt is the fixed instruction sent to the local
// model when extracting conference deadlines from webpage text.
const DeadlineExtractionSystemPrompt = `You are a conference deadline extraction assistant.

RULES:
1. Read the webpage content and find:
   - Conference name (short acronym) and full name
   - Submission deadlines (abstract, paper, workshop, camera-ready, etc.) as YYYY-MM-DD dates
   - The conference date itself as a YYYY-MM-DD date
2. Output ONLY a fenced YAML block in exactly this shape:

` + "```yaml" + `
- name: ACRONYM
  full_name: "Full Name"
  website: "URL"
  deadlines:
    abstract: "YYYY-MM-DD"
    paper: "YYYY-MM-DD"
  conference_date: "YYYY-MM-DD"
` + "```" + `

3. If a date is not found, omit that field. Never invent dates.
4. If the page contains no deadline information at all, output exactly:

` + "```yaml" + `
[]
` + "```" + `
`

// BuildExtractionPrompt builds the user prompt for deadline extraction.
func BuildExtractionPrompt(url, pageText string) string {
	return fmt.Sprintf("URL: %s\n\nWebpage content:\n%s\n\nExtract the conference deadline information as instructed.", url, pageText)
}
