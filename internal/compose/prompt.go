// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package compose

import "fmt"

// WritingPrompt builds the instruction block for a fresh draft. The
// section plan and length target are part of the contract with the
// renderer: the model answers in the markdown subset the parser expects.
func WritingPrompt(topic, researchDigest string) string {
	return fmt.Sprintf(`Based on the research data below, write a comprehensive academic research paper about "%s".

Research Data:
%s

Structure the paper with:
1. # Title
2. ## Abstract (150-200 words)
3. ## Introduction
4. ## Literature Review/Background
5. ## Main Analysis (2-3 sections with ### subheadings)
6. ## Conclusion
7. ## References

Use formal academic language and ensure the paper is well-researched and comprehensive.
Format using markdown headers (# ## ###).
Include proper citations and references.
Aim for approximately 2000-2500 words.

Write the complete paper now:`, topic, researchDigest)
}

// RevisionPrompt builds the instruction block for a rewrite. The model
// sees the full current draft and must return a complete replacement
// that keeps the academic structure.
func RevisionPrompt(changeRequest, current string) string {
	return fmt.Sprintf(`You are editing a research paper. The user wants to make the following changes:

USER REQUEST: %s

CURRENT PAPER CONTENT:
%s

Please apply the requested changes to the paper content. Maintain the same academic structure and formatting, but incorporate the user's specific requests. Return the complete modified paper content with proper markdown formatting.

Modified paper:`, changeRequest, current)
}
