package openai

const recommendVocabularySystemPrompt = `You are a Mandarin Chinese teacher choosing vocabulary for a learner.

Return ONLY a JSON object with a "words" array. Each word has:
- "word": the word in simplified Chinese characters
- "pinyin": pinyin with tone marks
- "meaning": a short meaning written in the learner's native language
- "cultural_note": one sentence of cultural background in the learner's native language, or "" when nothing notable applies
- "proficiency": an integer from 0 to 100 estimating how well a learner at the given level already knows the word
- "category": a one or two word topic label such as "food" or "travel", or ""

Choose words that are useful at the requested HSK level and avoid repeating the same character across words.`

const deconstructEtymologySystemPrompt = `You are an expert in Chinese character etymology.

Decompose the given word into its characters and, for each character, into its meaningful components (radicals and phonetic parts).
Return ONLY a JSON object:
- "components": an ordered array of {"fragment": "<character or radical>", "meaning": "<what it contributes, in English>"}
- "cultural_context": two or three sentences explaining how the components combine and any cultural story behind the word

Keep fragments in reading order. Do not invent components that are not part of the written form.`

const generateReviewDialogueSystemPrompt = `You write short Mandarin Chinese dialogues that let a learner practise specific vocabulary.

Write a realistic scenario and a dialogue of 4 to 8 lines between "assistant" (a native speaker) and "user" (the learner).
Every target word must appear exactly once, in a "user" line, as a fill-in-the-blank exercise.
Return ONLY a JSON object:
- "scenario": one sentence in English describing the situation
- "dialogue": an ordered array of lines, each with
  - "speaker": "assistant" or "user"
  - "text": the Chinese sentence; for an exercise line replace the target word with "____"
  - "pinyin": pinyin of the full sentence including the target word
  - "translation": English translation of the full sentence
  - "blank_word": the target word removed from "text", or "" when the line is not an exercise
  - "hint_image_prompt": for an exercise line, a short English description of a picture that hints at the target word without showing text; otherwise ""`

const continueDialogueSystemPrompt = `You are a friendly Mandarin Chinese conversation partner for a learner.

Reply in simple Mandarin Chinese suited to the learner, one to three sentences.
After the Chinese, add a new line with pinyin and another new line with an English translation.
If the learner makes a mistake, gently model the correct sentence in your reply.`

const analyzeImageSystemPrompt = `You help a Mandarin Chinese learner understand Chinese text they photographed.

Describe every piece of recognisable Chinese text in the image.
For each one, label what it is (for example: street sign, menu item, product label, notice), then give the characters, the pinyin and an English translation.
If there is no Chinese text, say so and briefly describe the image instead.`

const annotateTextSystemPrompt = `You annotate Mandarin Chinese text for a learner.

Return ONLY a JSON object:
- "translation": a natural translation of the whole text into the learner's native language
- "tokens": the text split into words in order, each {"text": "<word>", "pinyin": "<pinyin with tone marks>", "meaning": "<meaning in the learner's native language>"}

Punctuation tokens get "" for pinyin and meaning.`

const illustrationPromptTemplate = `A simple, friendly flat illustration for a language-learning flashcard, with no text or letters in the picture: %s`

const recommendVocabularySchema = `{
  "type": "object",
  "properties": {
    "words": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "word": {"type": "string"},
          "pinyin": {"type": "string"},
          "meaning": {"type": "string"},
          "cultural_note": {"type": "string"},
          "proficiency": {"type": "integer"},
          "category": {"type": "string"}
        },
        "required": ["word", "pinyin", "meaning", "cultural_note", "proficiency", "category"],
        "additionalProperties": false
      }
    }
  },
  "required": ["words"],
  "additionalProperties": false
}`

const deconstructEtymologySchema = `{
  "type": "object",
  "properties": {
    "components": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "fragment": {"type": "string"},
          "meaning": {"type": "string"}
        },
        "required": ["fragment", "meaning"],
        "additionalProperties": false
      }
    },
    "cultural_context": {"type": "string"}
  },
  "required": ["components", "cultural_context"],
  "additionalProperties": false
}`

const generateReviewDialogueSchema = `{
  "type": "object",
  "properties": {
    "scenario": {"type": "string"},
    "dialogue": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "speaker": {"type": "string", "enum": ["assistant", "user"]},
          "text": {"type": "string"},
          "pinyin": {"type": "string"},
          "translation": {"type": "string"},
          "blank_word": {"type": "string"},
          "hint_image_prompt": {"type": "string"}
        },
        "required": ["speaker", "text", "pinyin", "translation", "blank_word", "hint_image_prompt"],
        "additionalProperties": false
      }
    }
  },
  "required": ["scenario", "dialogue"],
  "additionalProperties": false
}`

const annotateTextSchema = `{
  "type": "object",
  "properties": {
    "translation": {"type": "string"},
    "tokens": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "text": {"type": "string"},
          "pinyin": {"type": "string"},
          "meaning": {"type": "string"}
        },
        "required": ["text", "pinyin", "meaning"],
        "additionalProperties": false
      }
    }
  },
  "required": ["translation", "tokens"],
  "additionalProperties": false
}`
