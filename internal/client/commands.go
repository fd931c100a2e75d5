package client

import "github.com/urfave/cli/v3"

func userDetailsFlags(required bool) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "username",
			Aliases:  []string{"u"},
			Usage:    "Account username",
			Required: required,
		},
		&cli.StringFlag{
			Name:     "password",
			Aliases:  []string{"p"},
			Usage:    "Account password",
			Required: required,
		},
		&cli.StringFlag{
			Name:  "email",
			Usage: "Contact e-mail",
		},
		&cli.StringFlag{
			Name:  "birthday",
			Usage: "Birthday as YYYY-MM-DD",
		},
	}
}

func registerCommand(a *App) *cli.Command {
	return &cli.Command{
		Name:   "register",
		Usage:  "Create an account and make it the active user",
		Flags:  userDetailsFlags(true),
		Action: a.Register,
	}
}

func loginCommand(a *App) *cli.Command {
	return &cli.Command{
		Name:  "login",
		Usage: "Log in and store the session",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "username",
				Aliases:  []string{"u"},
				Usage:    "Account username",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "password",
				Aliases:  []string{"p"},
				Usage:    "Account password",
				Required: true,
			},
		},
		Action: a.Login,
	}
}

func logoutCommand(a *App) *cli.Command {
	return &cli.Command{
		Name:   "logout",
		Usage:  "Forget the stored session",
		Action: a.Logout,
	}
}

func sessionCommand(a *App) *cli.Command {
	return &cli.Command{
		Name:   "session",
		Usage:  "Show the stored session",
		Action: a.Session,
	}
}

func moviesCommand(a *App) *cli.Command {
	return &cli.Command{
		Name:  "movies",
		Usage: "Browse the catalog",
		Commands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List every movie",
				Action: a.MoviesList,
			},
			{
				Name:  "get",
				Usage: "Show one movie by title",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "title"},
				},
				Action: a.MoviesGet,
			},
			{
				Name:  "director",
				Usage: "Show a director by name",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "name"},
				},
				Action: a.MoviesDirector,
			},
			{
				Name:  "genre",
				Usage: "Show a genre by name",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "name"},
				},
				Action: a.MoviesGenre,
			},
		},
	}
}

func userCommand(a *App) *cli.Command {
	return &cli.Command{
		Name:  "user",
		Usage: "Manage the active account",
		Commands: []*cli.Command{
			{
				Name:   "show",
				Usage:  "Show the account record",
				Action: a.UserShow,
			},
			{
				Name:   "edit",
				Usage:  "Change account fields; only the given ones are sent",
				Flags:  userDetailsFlags(false),
				Action: a.UserEdit,
			},
			{
				Name:   "delete",
				Usage:  "Delete the account and forget the session",
				Action: a.UserDelete,
			},
		},
	}
}

func favoritesCommand(a *App) *cli.Command {
	return &cli.Command{
		Name:    "favorites",
		Aliases: []string{"fav"},
		Usage:   "Manage favourite movies",
		Commands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List favourite movie IDs",
				Action: a.FavoritesList,
			},
			{
				Name:      "add",
				Usage:     "Add one or more movies by ID",
				ArgsUsage: "MOVIE_ID...",
				Action:    a.FavoritesAdd,
			},
			{
				Name:      "remove",
				Usage:     "Remove one or more movies by ID",
				ArgsUsage: "MOVIE_ID...",
				Action:    a.FavoritesRemove,
			},
		},
	}
}

func versionCommand(a *App) *cli.Command {
	return &cli.Command{
		Name:   "version",
		Usage:  "Print build information",
		Action: a.Version,
	}
}
