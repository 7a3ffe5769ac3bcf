package graph

import (
	"gamification_backend/internal/model"
	"gamification_backend/internal/service"

	"github.com/graphql-go/graphql"
	"github.com/graphql-go/handler"
)

var badgeType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Badge",
	Fields: graphql.Fields{
		"id": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Int),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return int(p.Source.(model.Badge).ID), nil
			},
		},
		"name": &graphql.Field{
			Type: graphql.String,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(model.Badge).Name, nil
			},
		},
		"description": &graphql.Field{
			Type: graphql.String,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(model.Badge).Description, nil
			},
		},
		"icon": &graphql.Field{
			Type: graphql.String,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(model.Badge).Icon, nil
			},
		},
		"criteria": &graphql.Field{
			Type: graphql.String,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(model.Badge).Criteria, nil
			},
		},
		"points": &graphql.Field{
			Type: graphql.Int,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(model.Badge).Points, nil
			},
		},
	},
})

var levelType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Level",
	Fields: graphql.Fields{
		"id": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Int),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return int(p.Source.(model.Level).ID), nil
			},
		},
		"name": &graphql.Field{
			Type: graphql.String,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(model.Level).Name, nil
			},
		},
		"tier": &graphql.Field{
			Type: graphql.Int,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(model.Level).Tier, nil
			},
		},
		"minXp": &graphql.Field{
			Type: graphql.Int,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(model.Level).MinXP, nil
			},
		},
	},
})

var userBadgeType = graphql.NewObject(graphql.ObjectConfig{
	Name: "UserBadge",
	Fields: graphql.Fields{
		"id": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Int),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return int(p.Source.(model.UserBadge).ID), nil
			},
		},
		"userId": &graphql.Field{
			Type: graphql.Int,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return int(p.Source.(model.UserBadge).UserID), nil
			},
		},
		"badgeId": &graphql.Field{
			Type: graphql.Int,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return int(p.Source.(model.UserBadge).BadgeID), nil
			},
		},
		"earnedAt": &graphql.Field{
			Type: graphql.DateTime,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				earned := p.Source.(model.UserBadge).EarnedAt
				if earned == nil {
					return nil, nil
				}
				return *earned, nil
			},
		},
		"badge": &graphql.Field{
			Type: badgeType,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(model.UserBadge).Badge, nil
			},
		},
	},
})

var userLevelType = graphql.NewObject(graphql.ObjectConfig{
	Name: "UserLevel",
	Fields: graphql.Fields{
		"id": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Int),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return int(p.Source.(model.UserLevel).ID), nil
			},
		},
		"userId": &graphql.Field{
			Type: graphql.Int,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return int(p.Source.(model.UserLevel).UserID), nil
			},
		},
		"levelId": &graphql.Field{
			Type: graphql.Int,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return int(p.Source.(model.UserLevel).LevelID), nil
			},
		},
		"xp": &graphql.Field{
			Type: graphql.Int,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(model.UserLevel).XP, nil
			},
		},
		"attainedAt": &graphql.Field{
			Type: graphql.DateTime,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				attained := p.Source.(model.UserLevel).AttainedAt
				if attained == nil {
					return nil, nil
				}
				return *attained, nil
			},
		},
		"level": &graphql.Field{
			Type: levelType,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(model.UserLevel).Level, nil
			},
		},
	},
})

// NewSchema builds the query schema on top of the resolver's capabilities.
func NewSchema(r *Resolver) (graphql.Schema, error) {
	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"badges": &graphql.Field{
				Type: graphql.NewList(badgeType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Badges.ListBadges()
				},
			},
			"badge": &graphql.Field{
				Type: badgeType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{
						Type: graphql.NewNonNull(graphql.Int),
					},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id := p.Args["id"].(int)
					badge, err := r.Badges.GetBadge(uint(id))
					if err != nil {
						return nil, err
					}
					return *badge, nil
				},
			},
			"userBadges": &graphql.Field{
				Type: graphql.NewList(userBadgeType),
				Args: graphql.FieldConfigArgument{
					"userId": &graphql.ArgumentConfig{
						Type: graphql.Int,
					},
					"badgeId": &graphql.ArgumentConfig{
						Type: graphql.Int,
					},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					var query service.UserBadgeQuery
					if v, ok := p.Args["userId"].(int); ok {
						query.UserID = &v
					}
					if v, ok := p.Args["badgeId"].(int); ok {
						query.BadgeID = &v
					}
					return r.UserBadges.List(query)
				},
			},
			"userLevels": &graphql.Field{
				Type: graphql.NewList(userLevelType),
				Args: graphql.FieldConfigArgument{
					"userId": &graphql.ArgumentConfig{
						Type: graphql.Int,
					},
					"levelId": &graphql.ArgumentConfig{
						Type: graphql.Int,
					},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					var query service.UserLevelQuery
					if v, ok := p.Args["userId"].(int); ok {
						query.UserID = &v
					}
					if v, ok := p.Args["levelId"].(int); ok {
						query.LevelID = &v
					}
					return r.UserLevels.List(query)
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query: queryType,
	})
}

// NewHandler wraps the schema in an HTTP handler with GraphiQL enabled.
func NewHandler(schema graphql.Schema) *handler.Handler {
	return handler.New(&handler.Config{
		Schema:   &schema,
		Pretty:   true,
		GraphiQL: true,
	})
}
