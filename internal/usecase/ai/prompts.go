package ai

const transcriptionPrompt = "Please transcribe this audio file accurately. Provide the full transcription."

const summaryPromptTemplate = `
You are a meeting assistant. Analyze this meeting transcription and provide:

1. A short meeting title (5-8 words)
2. Key discussion points (3-5 bullet points)
3. Decisions made (if any)
4. Action items with suggested assignee (if mentioned)

Transcription:
%s

Respond in this exact JSON format (valid JSON only, no markdown):
{
    "title": "Meeting title here",
    "key_points": ["point 1", "point 2", "point 3"],
    "decisions": ["decision 1", "decision 2"],
    "action_items": [
        {"task": "description", "assignee": "person name or Unassigned", "priority": "medium"}
    ]
}

Keep it simple and clear. If something is not mentioned, use empty arrays.
`
