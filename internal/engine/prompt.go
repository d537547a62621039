package engine

// LLM prompt templates — data only, no logic.

// suggestPrompt asks for resume improvement suggestions as JSON.
// Args: language name, job title, job description, resume text.
const suggestPrompt = `You are a resume improvement assistant. Answer in %s.

Given the target job and the resume below, produce concrete suggestions to
improve the resume for this specific job.

Return ONLY a JSON array, no prose, where each element is:
{"section": "summary|skills|experience|education|keywords", "text": "...", "priority": "high|medium|low"}

Rules:
- At most 8 suggestions.
- Each suggestion must be actionable and reference content from the job.
- Never invent experience the candidate does not have.

Job title: %s

Job description:
%s

Resume:
%s`

// optimizePrompt asks for a rewritten resume tuned to the job.
// Args: language name, job title, job description, resume text.
const optimizePrompt = `You are a resume optimization assistant. Answer in %s.

Rewrite the resume below so it is better targeted at the job, keeping every
fact truthful. Reorder and rephrase; never fabricate employers, dates, or
degrees. Preserve the section structure (summary, experience, education,
skills). Return ONLY the rewritten resume as plain text, no commentary.

Job title: %s

Job description:
%s

Resume:
%s`

// languageNames maps locale codes to the language names used in
// prompts.
var languageNames = map[string]string{
	"pt": "Brazilian Portuguese",
	"en": "English",
	"es": "Spanish",
}
