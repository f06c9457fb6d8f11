package client

import (
	"hartlog/internal/domain/fitlog"
)

// Chat wire types, matching the OpenAI-compatible endpoint the server
// proxies to.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatRequest struct {
	Model       string        `json:"model"`
	Temperature float64       `json:"temperature,omitempty"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Messages    []ChatMessage `json:"messages"`
}

type ChatResponse struct {
	Choices []struct {
		Message ChatMessage `json:"message"`
	} `json:"choices"`
}

const coachModel = "llama3-70b-8192"

const workoutSystemPrompt = `You are a precise, encouraging personal coach.
- Use the user's goals/memories as context.
- Analyze whether today's workout moves the user toward those goals.
- Call out concrete physiological benefits (strength, hypertrophy, endurance, VO2max, mobility, etc.).
- If misaligned, explain *why* and give a fix.
- Keep tone supportive and direct. Use short bullets and clear headings.`

const eatingSystemPrompt = `You are a world-class nutritionist. Be supportive, specific, and realistic. Use the user's goals/memories for context and keep advice practical.`

// buildCoachRequest assembles the context bundle for one record: the user's
// goals/memories, today's entries, and a short recent summary from the other
// log category.
func buildCoachRequest(cat fitlog.Category, rec fitlog.Record, userContext, recentOther string) ChatRequest {
	if cat == fitlog.CategoryEating {
		return ChatRequest{
			Model:    coachModel,
			Messages: eatingMessages(rec, userContext, recentOther),
		}
	}
	return ChatRequest{
		Model:       coachModel,
		Temperature: 0.6,
		MaxTokens:   700,
		Messages:    workoutMessages(rec, userContext, recentOther),
	}
}

func workoutMessages(rec fitlog.Record, userContext, recentEating string) []ChatMessage {
	body := "USER CONTEXT (goals + memories):\n" + userContext + "\n\n" +
		"TODAY'S WORKOUT:\n" + fitlog.EntrySummary(fitlog.CategoryWorkout, rec) + "\n\n"
	if recentEating != "" {
		body += "RECENT EATING (last week, most recent first):\n" + recentEating + "\n\n"
	}
	body += `Write the response with these sections:

**Benefits You Just Earned**
- 4–8 bullets naming specific adaptations and muscle groups from today's session.

**Alignment With Your Goals**
- State explicitly which goal(s) this session supports (or doesn't) and *why*.

**What To Do Next**
- 3 specific actions for the next session/week (sets/reps/weight progression for strength; time/distance/pace/HR for cardio; recovery notes).

**Fueling Check (from recent meals)**
- 2–4 bullets connecting recent nutrition to today's training: pre/post-workout timing, carb/protein adequacy, hydration, and concrete fixes for next session.`

	return []ChatMessage{
		{Role: "system", Content: workoutSystemPrompt},
		{Role: "user", Content: body},
	}
}

func eatingMessages(rec fitlog.Record, userContext, recentWorkouts string) []ChatMessage {
	body := "USER CONTEXT (goals & memories):\n" + userContext + "\n\n" +
		"TODAY'S MEALS (user-entered):\n" + fitlog.EntrySummary(fitlog.CategoryEating, rec) + "\n\n"
	if recentWorkouts != "" {
		body += "RECENT WORKOUTS (last week, most recent first):\n" + recentWorkouts + "\n\n"
	}
	body += `Write the response with these sections:

**What You Ate Today (parsed)**
- Brief bullet list that restates the meals with simple labels (breakfast/lunch/dinner/snacks) and approx calories if provided.

**Alignment With Your Goals**
- Call out which goals this day supports (or not) and *why* (e.g., protein total, fiber, hydration, calorie balance, timing).

**Training Fit (from recent workouts)**
- 2–4 bullets linking today's fueling to recent training demands (strength vs endurance): pre/post-workout timing, carb & protein amounts, hydration. Give concrete fixes for the next session.

**What To Do Next**
- 3 highly specific actions for tomorrow: exact snack/meal ideas with grams/ounces, fluid targets, simple swaps, and any macro targets.`

	return []ChatMessage{
		{Role: "system", Content: eatingSystemPrompt},
		{Role: "user", Content: body},
	}
}
