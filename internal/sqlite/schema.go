package sqlite

// Schema DDL. recipes carries no uniqueness constraint on id so that legacy
// create mode can represent duplicate nodes, matching a graph store without a
// Recipe.id constraint. List-valued properties are stored as JSON text.
const (
	createRecipes = `CREATE TABLE IF NOT EXISTS recipes (
    id INTEGER NOT NULL,
    name TEXT NOT NULL,
    description TEXT NOT NULL,
    minutes INTEGER NOT NULL,
    nutrition TEXT NOT NULL,
    steps TEXT NOT NULL
);`

	createIngredients = `CREATE TABLE IF NOT EXISTS ingredients (
    name TEXT PRIMARY KEY
);`

	createContains = `CREATE TABLE IF NOT EXISTS contains (
    recipe_id INTEGER NOT NULL,
    ingredient_name TEXT NOT NULL,
    PRIMARY KEY (recipe_id, ingredient_name),
    FOREIGN KEY (ingredient_name) REFERENCES ingredients(name)
);`
)

// schemaStatements lists the DDL in dependency order.
var schemaStatements = []string{
	createRecipes,
	createIngredients,
	createContains,
}
