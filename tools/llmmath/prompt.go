package llmmath

// DefaultPrompt asks for a single parsable expression; %s is replaced by the question
const DefaultPrompt = "Human: Given a question with a math problem, provide only a single line mathematical expression that solves the problem in the following format. Don't solve the expression only create a parsable expression.\n" +
	"```text\n" +
	"${{single line mathematical expression that solves the problem}}\n" +
	"```\n" +
	"\n" +
	"Assistant:\n" +
	" Here is an example response with a single line mathematical expression for solving a math problem:\n" +
	"```text\n" +
	"37593**(1/5)\n" +
	"```\n" +
	"\n" +
	"Human: %s\n" +
	"\n" +
	"Assistant:"

// StopSequence ends generation before the model invents an evaluation result
const StopSequence = "```output"
