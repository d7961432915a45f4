package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/inkpost/internal/common"
	"github.com/dmitrijs2005/inkpost/internal/server/models"
)

type signupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type postRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
}

func (s *RestServer) handleSignup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name, email and password are required"})
		return
	}

	ctx := c.Request.Context()
	token, err := s.users.Register(ctx, req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorConflict) {
			c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
			return
		}
		s.logger.Error(ctx, "signup failed", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (s *RestServer) handleLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}

	ctx := c.Request.Context()
	token, err := s.users.Login(ctx, req.Email, req.Password)
	if err != nil {
		// unknown email and wrong password get the same answer
		if errors.Is(err, common.ErrorUnauthorized) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email or password."})
			return
		}
		s.logger.Error(ctx, "login failed", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (s *RestServer) handleCreatePost(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		s.abortUnauthorized(c)
		return
	}

	var req postRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title and description are required"})
		return
	}

	ctx := c.Request.Context()
	if _, err := s.posts.Create(ctx, user.ID, req.Title, req.Description); err != nil {
		s.logger.Error(ctx, "create post failed", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Blog post created successfully"})
}

func (s *RestServer) handleListPosts(c *gin.Context) {
	ctx := c.Request.Context()
	posts, err := s.posts.List(ctx)
	if err != nil {
		s.logger.Error(ctx, "list posts failed", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	if posts == nil {
		// an empty feed is a JSON array, not null
		posts = []*models.Post{}
	}

	c.JSON(http.StatusOK, posts)
}

func (s *RestServer) handleUpdatePost(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		s.abortUnauthorized(c)
		return
	}

	var req postRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title and description are required"})
		return
	}

	ctx := c.Request.Context()
	err := s.posts.Update(ctx, c.Param("id"), user.ID, req.Title, req.Description)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Blog post not found"})
			return
		}
		s.logger.Error(ctx, "update post failed", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Blog post updated successfully"})
}

func (s *RestServer) handleDeletePost(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		s.abortUnauthorized(c)
		return
	}

	ctx := c.Request.Context()
	err := s.posts.Delete(ctx, c.Param("id"), user.ID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Blog post not found"})
			return
		}
		s.logger.Error(ctx, "delete post failed", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Blog post deleted successfully"})
}
