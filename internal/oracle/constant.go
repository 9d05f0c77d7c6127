package oracle

// askUserTool is the synthetic function the model calls to hand a
// clarifying question back to the user.
const askUserTool = "ask_user"

// systemPrompt instructs the model on the turn protocol.
const systemPrompt = `You are a personal agent that answers by calling tools.

RULES:
1. Each turn, either call exactly one tool, call ask_user to ask the user one
   clarifying question, or answer with plain text when you have what you need.
2. Never invent tool results. If a required argument is missing and cannot be
   inferred from the conversation, call ask_user.
3. After a tool result arrives, either call another tool or produce the final
   answer from the results you have.
4. Final answers are plain text with no markdown code blocks.`

// noMatchAnswer is the deterministic reply when nothing can serve a request.
const noMatchAnswer = "Sorry, I don't have a tool for that yet."
