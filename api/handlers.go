package api

import (
	"github.com/gofiber/fiber/v2"
)

// ErrorResponse is the JSON payload returned on request failures.
type ErrorResponse struct {
	Error string `json:"error"`
}

// AddStoryRequest is the payload for POST /stories.
type AddStoryRequest struct {
	Text string `json:"text"`
}

// AddStoryResponse carries the ID allocated to an ingested story.
type AddStoryResponse struct {
	ID string `json:"id"`
}

// ExtractCharactersRequest is the payload for POST /stories/characters.
type ExtractCharactersRequest struct {
	Text string `json:"text"`
}

// ExtractCharactersResponse carries the comma-joined character name list.
type ExtractCharactersResponse struct {
	Characters string `json:"characters"`
}

// AnswerRequest is the payload for POST /answer.
type AnswerRequest struct {
	Question  string `json:"question"`
	Character string `json:"character"`
}

// AnswerResponse carries the character-voiced answer text.
type AnswerResponse struct {
	Answer string `json:"answer"`
}

// handlePing returns a simple health check response.
func (s *Server) handlePing(c *fiber.Ctx) error {
	return c.JSON("pong")
}

// handleAddStory ingests one story and returns its allocated ID.
func (s *Server) handleAddStory(c *fiber.Ctx) error {
	var req AddStoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid request body"})
	}
	if req.Text == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "text is required"})
	}

	id, err := s.memory.AddStory(c.Context(), req.Text)
	if err != nil {
		s.logger.Error("story ingestion failed", "err", err)
		return c.Status(fiber.StatusBadGateway).JSON(ErrorResponse{Error: "failed to ingest story"})
	}

	return c.Status(fiber.StatusCreated).JSON(AddStoryResponse{ID: id})
}

// handleExtractCharacters extracts proper character names from a story.
func (s *Server) handleExtractCharacters(c *fiber.Ctx) error {
	var req ExtractCharactersRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid request body"})
	}
	if req.Text == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "text is required"})
	}

	characters, err := s.memory.ExtractCharacterNames(c.Context(), req.Text)
	if err != nil {
		s.logger.Error("character extraction failed", "err", err)
		return c.Status(fiber.StatusBadGateway).JSON(ErrorResponse{Error: "failed to extract characters"})
	}

	return c.JSON(ExtractCharactersResponse{Characters: characters})
}

// handleAnswer produces a character-voiced answer grounded in the most
// recently ingested story. A missing story yields a normal 200 reply with
// the no-story message, not an error.
func (s *Server) handleAnswer(c *fiber.Ctx) error {
	var req AnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid request body"})
	}
	if req.Question == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "question is required"})
	}
	if req.Character == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "character is required"})
	}

	answer, err := s.memory.Answer(c.Context(), req.Question, req.Character)
	if err != nil {
		s.logger.Error("answer generation failed", "err", err)
		return c.Status(fiber.StatusBadGateway).JSON(ErrorResponse{Error: "failed to generate answer"})
	}

	return c.JSON(AnswerResponse{Answer: answer})
}
